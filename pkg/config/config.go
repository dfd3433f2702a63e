package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"pairplan/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	// The two participants sharing the plan, and which of them this
	// installation acts as.
	ParticipantA string `mapstructure:"participant_a"`
	ParticipantB string `mapstructure:"participant_b"`
	CurrentUser  string `mapstructure:"current_user"`

	// Day window and allocator defaults; persisted state overrides these
	// once a plan exists.
	DayStart   string `mapstructure:"day_start"`
	DayEnd     string `mapstructure:"day_end"`
	EnergyMode string `mapstructure:"energy_mode"`

	// Store backend: sqlite3 with a file path, or postgres with a DSN
	// when the pair shares one database.
	StoreDriver string `mapstructure:"store_driver"`
	Database    string `mapstructure:"database"`

	KeyMap     map[string]string `mapstructure:"keymap"`
	StylesFile string            `mapstructure:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Domain colors
	MatchColor string `json:"match_color"`
	SoloColor  string `json:"solo_color"`
	FixedColor string `json:"fixed_color"`
	GapColor   string `json:"gap_color"`
}

// Load loads the application configuration from the specified path,
// creating a default config file on first run.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "pairplan")
	defaultConfigPath := filepath.Join(configDir, "config.json")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	v.SetDefault("participant_a", "A")
	v.SetDefault("participant_b", "B")
	v.SetDefault("current_user", "A")
	v.SetDefault("day_start", "08:00")
	v.SetDefault("day_end", "22:00")
	v.SetDefault("energy_mode", "Busy")
	v.SetDefault("store_driver", "sqlite3")
	v.SetDefault("database", filepath.Join(configDir, "plan.db"))
	v.SetDefault("keymap", keymaps.GetDefaultKeyMappings())
	v.SetDefault("styles_file", filepath.Join(configDir, "styles.json"))

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, Styles{}, err
			}
		}
		// Config file not found: create it with the defaults.
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return Config{}, Styles{}, err
		}
		if err := v.WriteConfigAs(configPath); err != nil {
			return Config{}, Styles{}, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, Styles{}, err
	}

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		MatchColor:        "213",
		SoloColor:         "4",
		FixedColor:        "3",
		GapColor:          "240",
	}

	// Try to read the styles file
	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	// File exists, parse it
	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}

// ErrInvalidParticipants flags a config where the two participant ids are
// missing or identical; the app cannot run a two-party plan with it.
var ErrInvalidParticipants = fmt.Errorf("participant_a and participant_b must be two distinct non-empty ids")

// Validate checks the parts of the config the core depends on.
func (c Config) Validate() error {
	if c.ParticipantA == "" || c.ParticipantB == "" || c.ParticipantA == c.ParticipantB {
		return ErrInvalidParticipants
	}
	if c.CurrentUser != c.ParticipantA && c.CurrentUser != c.ParticipantB {
		return fmt.Errorf("current_user %q is not one of the configured participants", c.CurrentUser)
	}
	return nil
}
