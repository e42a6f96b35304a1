package domain

import (
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// IsInitialized reports whether the store exists.
	IsInitialized() bool

	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// BoardRepository persists the whole task board.
// Implementations store tasks in display order so that replaying them
// rebuilds an equivalent board.
type BoardRepository interface {
	// Load reads the stored snapshot.
	Load() (*Snapshot, error)

	// Save replaces the stored snapshot.
	Save(snap *Snapshot) error
}

// Snapshot is the persisted form of a board.
// Fields are ordered to minimize memory padding.
type Snapshot struct {
	Ordering []string `json:"ordering"` // Frequency lists in display order
	Agenda   []Task   `json:"agenda"`   // Non-sleeping tasks in display order
	Sleepers []Task   `json:"sleepers"` // Sleeping tasks in wake order
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults, file, environment).
	Load() (*Config, error)
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// Path returns the config file path.
	Path() string

	// SetAutoRefresh updates [refresh].auto in the config file.
	SetAutoRefresh(enabled bool) error
}

// Logger writes operational logs.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards every message.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
