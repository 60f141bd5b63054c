package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/logic"
	"multiselect/internal/ui/multiselect"
	"multiselect/internal/ui/views"
)

// ErrConfigNotFound is returned when an explicitly requested config file is missing
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Fields   FieldsConfig   `toml:"fields"`
	Text     TextConfig     `toml:"text"`
	Behavior BehaviorConfig `toml:"behavior"`
	Layout   LayoutConfig   `toml:"layout"`
	Colors   views.Palette  `toml:"colors"`
	Logging  LoggingConfig  `toml:"logging"`
}

// FieldsConfig names the item fields used for identity and display
type FieldsConfig struct {
	UniqueKey  string `toml:"unique_key"`
	DisplayKey string `toml:"display_key"`
}

// TextConfig holds the user-visible strings
type TextConfig struct {
	Select            string `toml:"select"`
	SearchPlaceholder string `toml:"search_placeholder"`
	SearchIcon        string `toml:"search_icon"`
	SubmitButton      string `toml:"submit_button"`
	NoItems           string `toml:"no_items"`
}

// BehaviorConfig toggles widget features
type BehaviorConfig struct {
	Single         bool   `toml:"single"`
	Filter         string `toml:"filter"` // "partial" or "full"
	CanAddItems    bool   `toml:"can_add_items"`
	RemoveSelected bool   `toml:"remove_selected"`
	Editable       bool   `toml:"editable"`
}

// LayoutConfig controls what is drawn and how big
type LayoutConfig struct {
	HideTags         bool `toml:"hide_tags"`
	HideDropdown     bool `toml:"hide_dropdown"`
	HideSubmitButton bool `toml:"hide_submit_button"`
	HideHelp         bool `toml:"hide_help"`
	FixedHeight      bool `toml:"fixed_height"`
	ListHeight       int  `toml:"list_height"`
	Width            int  `toml:"width"`
}

// LoggingConfig configures the rotating log file
type LoggingConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service whose Load and Save use path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "multiselect", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their default values; unknown keys are rejected.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown config keys in %s:\n%s", path, strict.String())
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := multiselect.DefaultOptions()
	return &Config{
		Version: 1,
		Fields: FieldsConfig{
			UniqueKey:  domain.DefaultUniqueKey,
			DisplayKey: domain.DefaultDisplayKey,
		},
		Text: TextConfig{
			Select:            opts.SelectText,
			SearchPlaceholder: opts.SearchPlaceholder,
			SearchIcon:        opts.SearchIcon,
			SubmitButton:      opts.SubmitButtonText,
			NoItems:           opts.NoItemsText,
		},
		Behavior: BehaviorConfig{
			Filter: logic.FilterPartial.String(),
		},
		Layout: LayoutConfig{
			ListHeight: opts.ListHeight,
			Width:      opts.Width,
		},
		Logging: LoggingConfig{
			File:       "multiselect.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// ToOptions maps the configuration onto widget options
func (c *Config) ToOptions() multiselect.Options {
	return multiselect.Options{
		Single: c.Behavior.Single,
		Fields: domain.Fields{
			UniqueKey:  c.Fields.UniqueKey,
			DisplayKey: c.Fields.DisplayKey,
		}.WithDefaults(),
		SelectText:        c.Text.Select,
		SearchPlaceholder: c.Text.SearchPlaceholder,
		SearchIcon:        c.Text.SearchIcon,
		SubmitButtonText:  c.Text.SubmitButton,
		NoItemsText:       c.Text.NoItems,
		FilterMethod:      logic.ParseFilterMethod(c.Behavior.Filter),
		HideTags:          c.Layout.HideTags,
		HideDropdown:      c.Layout.HideDropdown,
		HideSubmitButton:  c.Layout.HideSubmitButton,
		HideHelp:          c.Layout.HideHelp,
		CanAddItems:       c.Behavior.CanAddItems,
		RemoveSelected:    c.Behavior.RemoveSelected,
		FixedHeight:       c.Layout.FixedHeight,
		TextInputEditable: c.Behavior.Editable,
		ListHeight:        c.Layout.ListHeight,
		Width:             c.Layout.Width,
		Styles:            views.NewStylesWithPalette(c.Colors),
	}
}
