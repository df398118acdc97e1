package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Browser BrowserConfig `yaml:"browser"`
	Demo    DemoConfig    `yaml:"demo"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig points the client at the catalog API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // seconds, applied to every request
}

// BrowserConfig holds display-side knobs.
type BrowserConfig struct {
	PageSize      int `yaml:"page_size"`
	RecentLimit   int `yaml:"recent_limit"`
	FeaturedLimit int `yaml:"featured_limit"`
}

// DemoConfig configures the embedded stub catalog server.
type DemoConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the yaml config at path. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8000/api"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 15
	}
	if c.Browser.PageSize <= 0 {
		c.Browser.PageSize = 20
	}
	if c.Browser.PageSize > 100 {
		c.Browser.PageSize = 100
	}
	if c.Browser.RecentLimit <= 0 {
		c.Browser.RecentLimit = 12
	}
	if c.Browser.FeaturedLimit <= 0 {
		c.Browser.FeaturedLimit = 6
	}
	if c.Demo.Port <= 0 {
		c.Demo.Port = 8000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
