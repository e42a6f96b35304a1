package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo-iq/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager edits the config file.
type Manager struct {
	configDir string // Path to the config directory (e.g., ~/.config/todoiq)
}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{configDir: defaultConfigDir()}
}

// NewManagerWithDir creates a new Manager with a custom config directory.
// This is useful for testing.
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{configDir: configDir}
}

// Path returns the config file path.
func (m *Manager) Path() string {
	if m.configDir == "" {
		return ""
	}
	return filepath.Join(m.configDir, domain.ConfigFileName)
}

// SetAutoRefresh writes [refresh].auto, keeping every other setting.
func (m *Manager) SetAutoRefresh(enabled bool) error {
	return m.update(func(raw map[string]any) {
		section, ok := raw["refresh"].(map[string]any)
		if !ok {
			section = make(map[string]any)
			raw["refresh"] = section
		}
		section["auto"] = enabled
	})
}

// update reads the config file as a raw map, applies fn and writes it back.
func (m *Manager) update(fn func(map[string]any)) error {
	path := m.Path()
	if path == "" {
		return errors.New("config directory not available")
	}

	raw := make(map[string]any)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read config: %w", err)
	}

	fn(raw)

	out, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(m.configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, out, 0o600)
}
