package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"pathrun/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version         int        `toml:"version"`
	SearchPaths     []string   `toml:"search_paths"` // replaces $PATH when non-empty
	ExtraPaths      []string   `toml:"extra_paths"`
	TerminalCommand []string   `toml:"terminal_command"`
	Shell           string     `toml:"shell"`
	LogFile         string     `toml:"log_file"`
	Watch           bool       `toml:"watch"`
	WatchDebounceMs int        `toml:"watch_debounce_ms"`
	UISettings      UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxResults    int  `toml:"max_results"` // 0 shows every match
	CloseOnLaunch bool `toml:"close_on_launch"`
}

// WatchDebounce returns the debounce delay for directory change events
func (c *Config) WatchDebounce() time.Duration {
	if c.WatchDebounceMs <= 0 {
		return DefaultWatchDebounce
	}
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}

// DefaultWatchDebounce coalesces bursts such as package installs
const DefaultWatchDebounce = 500 * time.Millisecond

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

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigServiceAt(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns $XDG_CONFIG_HOME/pathrun/config.toml or its platform equivalent
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
	return filepath.Join(configDir, "pathrun", "config.toml")
}

// DefaultLogPath returns the log file used when none is configured
func DefaultLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "pathrun", "pathrun.log")
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults if the file is missing
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	defaultTerminal := cfg.TerminalCommand
	cfg.SearchPaths, cfg.ExtraPaths, cfg.TerminalCommand = nil, nil, nil

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.TerminalCommand == nil {
		cfg.TerminalCommand = defaultTerminal
	}
	if cfg.SearchPaths == nil {
		cfg.SearchPaths = []string{}
	}
	if cfg.ExtraPaths == nil {
		cfg.ExtraPaths = []string{}
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
	return &Config{
		Version:         1,
		SearchPaths:     []string{},
		ExtraPaths:      []string{},
		TerminalCommand: []string{"x-terminal-emulator", "-e"},
		Shell:           "sh",
		Watch:           true,
		WatchDebounceMs: int(DefaultWatchDebounce / time.Millisecond),
		UISettings: UISettings{
			CloseOnLaunch: true,
		},
	}
}
