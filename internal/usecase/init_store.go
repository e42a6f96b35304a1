// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/todo-iq/internal/domain"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct {
	DataDir string // Directory holding the store and logs
}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	DataDir            string // Path to the data directory
	AlreadyInitialized bool   // True if the store already existed
}

// InitStore creates the data directory and an empty task store.
type InitStore struct {
	storeInit domain.StoreInitializer
	logger    domain.Logger
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(storeInit domain.StoreInitializer, logger domain.Logger) *InitStore {
	return &InitStore{storeInit: storeInit, logger: logger}
}

// Execute initializes the store. Running it again is harmless.
func (uc *InitStore) Execute(_ context.Context, in InitStoreInput) (*InitStoreOutput, error) {
	if uc.storeInit.IsInitialized() {
		return &InitStoreOutput{DataDir: in.DataDir, AlreadyInitialized: true}, nil
	}

	if in.DataDir != "" {
		if err := os.MkdirAll(filepath.Join(in.DataDir, domain.LogsDirName), 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	if err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	uc.logger.Info("store", "initialized in "+in.DataDir)
	return &InitStoreOutput{DataDir: in.DataDir}, nil
}
