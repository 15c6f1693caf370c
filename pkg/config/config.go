package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"todopane/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	Driver     string            `mapstructure:"driver"`
	Database   string            `mapstructure:"database"`
	StorageKey string            `mapstructure:"storage_key"`
	KeyMap     map[string]string `mapstructure:"keymap"`
	Styles     Styles            `mapstructure:"styles"`
}

// Styles holds the application colors
type Styles struct {
	// UI element colors
	BorderColor string `mapstructure:"border_color"`
	AccentColor string `mapstructure:"accent_color"`

	// Text colors
	NormalTextColor   string `mapstructure:"normal_text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color"`
	SelectedBgColor   string `mapstructure:"selected_bg_color"`
	ErrorColor        string `mapstructure:"error_color"`
	DoneTextColor     string `mapstructure:"done_text_color"`

	// Chip colors
	LowColor      string `mapstructure:"low_color"`
	MediumColor   string `mapstructure:"medium_color"`
	HighColor     string `mapstructure:"high_color"`
	CategoryColor string `mapstructure:"category_color"`
	DueColor      string `mapstructure:"due_color"`
	OverdueColor  string `mapstructure:"overdue_color"`
}

// DefaultStyles returns the built-in color scheme
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "252",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		DoneTextColor:     "243",
		LowColor:          "36",
		MediumColor:       "214",
		HighColor:         "196",
		CategoryColor:     "111",
		DueColor:          "250",
		OverdueColor:      "203",
	}
}

// Dir returns the default configuration directory
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "todopane"), nil
}

// Load reads the configuration from configPath, or the default location when
// configPath is empty. A missing default config file is created with defaults.
// Environment variables prefixed TODOPANE_ override file values.
func Load(configPath string) (Config, error) {
	configDir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return load(viper.New(), configDir, configPath)
}

func load(v *viper.Viper, configDir, configPath string) (Config, error) {
	setDefaults(v, configDir)

	v.SetEnvPrefix("todopane")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// Config file not found, create default config
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return Config{}, err
			}
			if err := v.SafeWriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
				return Config{}, fmt.Errorf("write default config: %w", err)
			}
		case configPath != "" && os.IsNotExist(err):
			return Config{}, fmt.Errorf("config file %s: %w", configPath, err)
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("driver", "sqlite3")
	v.SetDefault("database", filepath.Join(configDir, "todo.db"))
	v.SetDefault("storage_key", "todopane.tasks")
	v.SetDefault("keymap", keymaps.GetDefaultKeyMappings())

	s := DefaultStyles()
	v.SetDefault("styles.border_color", s.BorderColor)
	v.SetDefault("styles.accent_color", s.AccentColor)
	v.SetDefault("styles.normal_text_color", s.NormalTextColor)
	v.SetDefault("styles.selected_text_color", s.SelectedTextColor)
	v.SetDefault("styles.selected_bg_color", s.SelectedBgColor)
	v.SetDefault("styles.error_color", s.ErrorColor)
	v.SetDefault("styles.done_text_color", s.DoneTextColor)
	v.SetDefault("styles.low_color", s.LowColor)
	v.SetDefault("styles.medium_color", s.MediumColor)
	v.SetDefault("styles.high_color", s.HighColor)
	v.SetDefault("styles.category_color", s.CategoryColor)
	v.SetDefault("styles.due_color", s.DueColor)
	v.SetDefault("styles.overdue_color", s.OverdueColor)
}
