package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"advselect/internal/domain"
	"advselect/internal/engine"
	"advselect/internal/eventbus"
)

// FileName is the per-directory config file name
const FileName = ".advselect.toml"

// Catalog sources
const (
	SourceSynthetic = "synthetic"
	SourceFile      = "file"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	UI      UISettings      `toml:"ui"`
	Catalog CatalogSettings `toml:"catalog"`
}

// UISettings represents dropdown geometry and presentation
type UISettings struct {
	RowHeight      int    `toml:"row_height"`
	ViewportHeight int    `toml:"viewport_height"`
	Overscan       int    `toml:"overscan"`
	Placeholder    string `toml:"placeholder"`
	PreviewLimit   int    `toml:"preview_limit"`
}

// CatalogSettings selects where items come from
type CatalogSettings struct {
	Source string `toml:"source"`         // "synthetic" or "file"
	Path   string `toml:"path,omitempty"` // TOML catalog for the file source
	Size   int    `toml:"size,omitempty"` // item count for the synthetic source
}

// Options converts the UI settings into engine options
func (c *Config) Options() engine.Options {
	return engine.Options{
		RowHeight:      c.UI.RowHeight,
		ViewportHeight: c.UI.ViewportHeight,
		Overscan:       c.UI.Overscan,
		Placeholder:    c.UI.Placeholder,
	}
}

// Validate checks the configuration before any session is built
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	switch c.Catalog.Source {
	case SourceSynthetic:
		if c.Catalog.Size < 0 {
			return &engine.ConfigError{Field: "catalog.size", Value: c.Catalog.Size, Reason: "must not be negative"}
		}
	case SourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("%w: catalog.path is required for the file source", engine.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown catalog source %q", engine.ErrInvalidConfig, c.Catalog.Source)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	log      *logrus.Entry
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "advselect", "config.toml"),
		log:      logrus.WithField("component", "config"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the user config file, falling back to
// defaults when it does not exist. ConfigLoaded is only published when a
// file was read.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cs.log.WithField("path", cs.filePath).Debug("no config file, using defaults")
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the user config file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cs.log.WithField("path", path).Info("config loaded")
	cs.publish(domain.ConfigLoadedEvent{Path: path})
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

	cs.log.WithField("path", path).Info("config saved")
	cs.publish(domain.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publish(event domain.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			RowHeight:      engine.DefaultRowHeight,
			ViewportHeight: engine.DefaultViewportHeight,
			Overscan:       engine.DefaultOverscan,
			Placeholder:    engine.DefaultPlaceholder,
			PreviewLimit:   20,
		},
		Catalog: CatalogSettings{
			Source: SourceSynthetic,
			Size:   128,
		},
	}
}
