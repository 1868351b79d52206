package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"procura/internal/eventbus"
)

// EnvPrefix is the prefix of environment overrides, e.g. PROCURA_DATA_FILE
const EnvPrefix = "PROCURA"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version" mapstructure:"version"`
	DataFile   string     `toml:"data_file" mapstructure:"data_file"` // "" uses the built-in sample
	LogFile    string     `toml:"log_file" mapstructure:"log_file"`
	StartPath  string     `toml:"start_path" mapstructure:"start_path"`
	Currency   string     `toml:"currency" mapstructure:"currency"`
	UISettings UISettings `toml:"ui" mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SidebarCollapsed bool `toml:"sidebar_collapsed" mapstructure:"sidebar_collapsed"`
	SidebarWidth     int  `toml:"sidebar_width" mapstructure:"sidebar_width"`
	ShowSummary      bool `toml:"show_summary" mapstructure:"show_summary"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// DefaultPath returns <user config dir>/procura/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "procura", "config.toml")
}

// Load reads the service's file. A missing file yields the defaults with
// environment overrides applied.
func (cs *configService) Load() (*Config, error) {
	cfg, err := read(cs.filePath, false)
	if err != nil {
		return nil, err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			DataFile:  cfg.DataFile,
			StartPath: cfg.StartPath,
		})
	}
	return cfg, nil
}

// Save writes the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return read(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	log.Printf("Config saved to %s", path)
	return nil
}

func read(path string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	} else if mustExist {
		return nil, fmt.Errorf("config file not found: %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("start_path", d.StartPath)
	v.SetDefault("currency", d.Currency)
	v.SetDefault("ui.sidebar_collapsed", d.UISettings.SidebarCollapsed)
	v.SetDefault("ui.sidebar_width", d.UISettings.SidebarWidth)
	v.SetDefault("ui.show_summary", d.UISettings.ShowSummary)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		LogFile:   "procura.log",
		StartPath: "/",
		Currency:  "Rp",
		UISettings: UISettings{
			SidebarWidth: 26,
			ShowSummary:  true,
		},
	}
}
