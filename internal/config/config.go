package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"luxegems/internal/domain"
	"luxegems/internal/eventbus"
)

const (
	// DefaultCardWidth is the inner width of a grid card
	DefaultCardWidth = 28

	// DefaultAPIURL is the local development backend
	DefaultAPIURL = "http://localhost:8001"

	// APIURLEnv overrides the configured API base URL
	APIURLEnv = "LUXEGEMS_API_URL"

	defaultRequestTimeout = 15 * time.Second
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	APIURL         string     `toml:"api_url" validate:"required,http_url"`
	RequestTimeout string     `toml:"request_timeout"` // Go duration, e.g. "15s"
	Categories     []string   `toml:"categories" validate:"dive,required"`
	Materials      []string   `toml:"materials" validate:"dive,required"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowImageURLs bool `toml:"show_image_urls"`
	CardWidth     int  `toml:"card_width" validate:"gte=12,lte=80"`
}

var validate = validator.New()

// Validate checks the API URL, the picker options and the card width
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Timeout returns the per-request timeout, falling back to the default
// when the value is missing or malformed.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return defaultRequestTimeout
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		log.Printf("Invalid request_timeout %q, using %s", c.RequestTimeout, defaultRequestTimeout)
		return defaultRequestTimeout
	}
	return d
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	getenv   func(string) string
}

// NewConfigService creates a config service reading the file at path.
// An empty path selects luxegems/config.toml under the user config dir.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		filePath: path,
		getenv:   os.Getenv,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "luxegems", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults. The API URL environment override is applied last.
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

	cs.applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			APIURL: cfg.APIURL,
			Path:   cs.filePath,
		})
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

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

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

func (cs *configService) applyEnv(cfg *Config) {
	if cs.getenv == nil {
		return
	}
	cfg.SetAPIURL(cs.getenv(APIURLEnv))
}

// SetAPIURL replaces the API base URL. A blank url keeps the current one.
func (c *Config) SetAPIURL(url string) {
	if strings.TrimSpace(url) == "" {
		return
	}
	c.APIURL = url
	c.normalize()
}

// normalize fills blanks left by a partial config file
func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if len(c.Categories) == 0 {
		c.Categories = append([]string(nil), domain.DefaultCategories...)
	}
	if len(c.Materials) == 0 {
		c.Materials = append([]string(nil), domain.DefaultMaterials...)
	}
	if c.UISettings.CardWidth <= 0 {
		c.UISettings.CardWidth = DefaultCardWidth
	}
}

// FallbackConfig returns the defaults used when the config file cannot be
// loaded. The API URL from the environment is kept only if it validates.
func FallbackConfig(getenv func(string) string) *Config {
	cfg := DefaultConfig()
	if getenv == nil {
		return cfg
	}
	cfg.SetAPIURL(getenv(APIURLEnv))
	if err := cfg.Validate(); err != nil {
		log.Printf("Ignoring %s: %v", APIURLEnv, err)
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version:        1,
		APIURL:         DefaultAPIURL,
		RequestTimeout: defaultRequestTimeout.String(),
		UISettings: UISettings{
			ShowImageURLs: true,
		},
	}
	cfg.normalize()
	return cfg
}
