package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo-iq/internal/domain"
)

// SetConfigInput contains the settings to change. Nil fields are left alone.
type SetConfigInput struct {
	AutoRefresh *bool
}

// SetConfigOutput contains the result of SetConfig.
type SetConfigOutput struct {
	Path string // Config file that was written
}

// SetConfig is the use case for changing settings in the config file.
type SetConfig struct {
	configManager domain.ConfigManager
	logger        domain.Logger
}

// NewSetConfig creates a new SetConfig use case.
func NewSetConfig(configManager domain.ConfigManager, logger domain.Logger) *SetConfig {
	return &SetConfig{configManager: configManager, logger: logger}
}

// Execute writes the requested settings.
func (uc *SetConfig) Execute(_ context.Context, in SetConfigInput) (*SetConfigOutput, error) {
	if in.AutoRefresh == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := uc.configManager.SetAutoRefresh(*in.AutoRefresh); err != nil {
		return nil, fmt.Errorf("set refresh.auto: %w", err)
	}
	uc.logger.Info("config", fmt.Sprintf("refresh.auto = %t", *in.AutoRefresh))
	return &SetConfigOutput{Path: uc.configManager.Path()}, nil
}
