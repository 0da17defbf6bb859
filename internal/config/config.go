// Package config loads the client configuration from ~/.zenv/config.yaml.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zenv-lang/zenvhub/client"
)

// Config holds the zenvhub client configuration.
type Config struct {
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	OutputFormat string        `yaml:"output_format"`
	Log          Log           `yaml:"log"`
}

// Log configures the rotating file logger.
type Log struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Filename   string `yaml:"filename"`    // log file path
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // number of backups
	MaxAge     int    `yaml:"max_age"`     // days
}

// DefaultPath returns the default config file path: ~/.zenv/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".zenv", "config.yaml")
	}
	return filepath.Join(home, ".zenv", "config.yaml")
}

func defaults() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		BaseURL:      client.DefaultBaseURL,
		Timeout:      client.DefaultTimeout,
		OutputFormat: "table",
		Log: Log{
			Level:      "info",
			Filename:   filepath.Join(home, ".zenv", "logs", "client.log"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     14,
		},
	}
}

// Load reads the configuration from the given YAML file path. A missing
// file yields the defaults with no error. The ZENV_HUB_URL environment
// variable overrides base_url regardless of the file contents.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env override
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if env := os.Getenv("ZENV_HUB_URL"); env != "" {
		cfg.BaseURL = env
	}
	return cfg, nil
}
