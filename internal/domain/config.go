package domain

import (
	"path/filepath"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Frequencies Frequencies   `toml:"frequencies"` // [frequencies.<name>] definitions (merged over the built-ins)
	Warnings    []string      `toml:"-"`
	Tasks       TasksConfig   `toml:"tasks"`
	Log         LogConfig     `toml:"log"`
	UI          UIConfig      `toml:"ui"`
	Refresh     RefreshConfig `toml:"refresh"`
}

// TasksConfig holds settings for task storage from [tasks] section.
type TasksConfig struct {
	Store   string `toml:"store,omitempty" envconfig:"STORE"`       // Storage backend: "json" (default) or "sqlite"
	DataDir string `toml:"data_dir,omitempty" envconfig:"DATA_DIR"` // Directory holding the store and logs
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" envconfig:"LOG_LEVEL"` // Log level: debug, info, warn, error
}

// UIConfig holds interactive settings from [ui] section.
type UIConfig struct {
	Confirm string `toml:"confirm,omitempty" envconfig:"CONFIRM"` // Confirmation prompt: "tui" (default) or "plain"
}

// RefreshConfig holds settings from [refresh] section.
type RefreshConfig struct {
	Auto bool `toml:"auto" envconfig:"AUTO_REFRESH"` // Refresh the to-do list before every command
}

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Confirmation prompt styles.
const (
	ConfirmTUI   = "tui"
	ConfirmPlain = "plain"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// Directory and file names for todo-iq.
const (
	AppDirName      = "todoiq"      // Directory name under XDG config/data homes
	ConfigFileName  = "config.toml" // Config file name
	JSONStoreName   = "tasks.json"  // JSON store file name
	SQLiteStoreName = "tasks.db"    // SQLite store file name
	LogsDirName     = "logs"        // Log directory name
	LogFileName     = "todoiq.log"  // Log file name
)

// ConfigDir returns the config directory for the given config home.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func ConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DataDir returns the data directory for the given data home.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the log file path inside a data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, LogFileName)
}

// StorePath returns the store file path for a backend inside a data directory.
func StorePath(dataDir, store string) string {
	if store == StoreSQLite {
		return filepath.Join(dataDir, SQLiteStoreName)
	}
	return filepath.Join(dataDir, JSONStoreName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Frequencies: DefaultFrequencies(),
		Tasks: TasksConfig{
			Store: StoreJSON,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			Confirm: ConfirmTUI,
		},
	}
}
