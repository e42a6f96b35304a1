// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo-iq/internal/domain"
)

// EnvPrefix is the prefix of environment variables overriding the config file.
const EnvPrefix = "TODOIQ"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file and the environment.
type Loader struct {
	configDir string // Path to the config directory (e.g., ~/.config/todoiq)
	dataHome  string // Base for the default data directory (e.g., ~/.local/share)
}

// NewLoader creates a new Loader using the XDG directories.
func NewLoader() *Loader {
	return &Loader{
		configDir: defaultConfigDir(),
		dataHome:  defaultDataHome(),
	}
}

// NewLoaderWithDirs creates a new Loader with custom directories.
// This is useful for testing.
func NewLoaderWithDirs(configDir, dataHome string) *Loader {
	return &Loader{
		configDir: configDir,
		dataHome:  dataHome,
	}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.ConfigDir(configHome)
}

// defaultDataHome returns XDG_DATA_HOME or ~/.local/share.
func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return dataHome
}

// Path returns the config file path.
func (l *Loader) Path() string {
	if l.configDir == "" {
		return ""
	}
	return filepath.Join(l.configDir, domain.ConfigFileName)
}

// Load returns the merged configuration.
// Precedence: defaults <- config file <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if path := l.Path(); path != "" {
		file, err := loadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if file != nil {
			base = mergeConfigs(base, file)
		}
	}

	if err := applyEnv(base); err != nil {
		return nil, err
	}

	if base.Tasks.DataDir == "" && l.dataHome != "" {
		base.Tasks.DataDir = domain.DataDir(l.dataHome)
	}

	if err := validate(base); err != nil {
		return nil, err
	}
	return base, nil
}

// applyEnv overrides cfg with TODOIQ_* environment variables.
func applyEnv(cfg *domain.Config) error {
	for _, spec := range []any{&cfg.Log, &cfg.Tasks, &cfg.UI, &cfg.Refresh} {
		if err := envconfig.Process(EnvPrefix, spec); err != nil {
			return fmt.Errorf("read environment: %w", err)
		}
	}
	return nil
}

func validate(cfg *domain.Config) error {
	switch cfg.Tasks.Store {
	case domain.StoreJSON, domain.StoreSQLite:
	default:
		return fmt.Errorf("%w: tasks.store = %q (want %q or %q)",
			domain.ErrInvalidConfigValue, cfg.Tasks.Store, domain.StoreJSON, domain.StoreSQLite)
	}
	switch cfg.UI.Confirm {
	case domain.ConfirmTUI, domain.ConfirmPlain:
	default:
		return fmt.Errorf("%w: ui.confirm = %q (want %q or %q)",
			domain.ErrInvalidConfigValue, cfg.UI.Confirm, domain.ConfirmTUI, domain.ConfirmPlain)
	}
	return nil
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{
		Frequencies: make(domain.Frequencies),
	}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "tasks":
			for k, v := range m {
				switch k {
				case "store":
					if s, ok := v.(string); ok {
						res.Tasks.Store = s
					}
				case "data_dir":
					if s, ok := v.(string); ok {
						res.Tasks.DataDir = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tasks]: %s", k))
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "confirm":
					if s, ok := v.(string); ok {
						res.UI.Confirm = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
				}
			}
		case "refresh":
			for k, v := range m {
				switch k {
				case "auto":
					if b, ok := v.(bool); ok {
						res.Refresh.Auto = b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [refresh]: %s", k))
				}
			}
		case "frequencies":
			warnings = append(warnings, parseFrequenciesSection(m, res.Frequencies)...)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseFrequenciesSection parses [frequencies.<name>] tables into out.
func parseFrequenciesSection(raw map[string]any, out domain.Frequencies) []string {
	var warnings []string
	for name, value := range raw {
		def, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key in [frequencies]: %s", name))
			continue
		}
		f := domain.Frequency{Name: name}
		for k, v := range def {
			n, isInt := v.(int64)
			switch {
			case k == "priority" && isInt:
				f.Priority = int(n)
			case k == "days" && isInt:
				f.Days = int(n)
			case k == "months" && isInt:
				f.Months = int(n)
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [frequencies.%s]: %s", name, k))
			}
		}
		out[name] = f
	}
	return warnings
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Frequencies: make(domain.Frequencies, len(base.Frequencies)+len(override.Frequencies)),
		Log:         base.Log,
		Tasks:       base.Tasks,
		UI:          base.UI,
		Refresh:     base.Refresh,
		Warnings:    append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	for name, f := range base.Frequencies {
		result.Frequencies[name] = f
	}
	for name, f := range override.Frequencies {
		result.Frequencies[name] = f
	}

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Tasks.Store != "" {
		result.Tasks.Store = override.Tasks.Store
	}
	if override.Tasks.DataDir != "" {
		result.Tasks.DataDir = override.Tasks.DataDir
	}
	if override.UI.Confirm != "" {
		result.UI.Confirm = override.UI.Confirm
	}
	if override.Refresh.Auto {
		result.Refresh.Auto = true
	}

	return result
}
