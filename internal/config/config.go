package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/RavuAlHemio/icingcake/internal/constants"
	"github.com/RavuAlHemio/icingcake/internal/domain"
)

// Config represents the top-level icingcake configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Icinga  IcingaConfig  `yaml:"icinga"`
	History HistoryConfig `yaml:"history"`
	EnvFile string        `yaml:"env_file"`
}

// ServerConfig defines the gateway HTTP server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// IcingaConfig defines how to reach the Icinga API
type IcingaConfig struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Timeout is a duration string such as "30s"
	Timeout string `yaml:"timeout"`

	// InsecureSkipVerify disables TLS certificate verification; Icinga
	// installations commonly run with self-signed certificates.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// HistoryConfig defines the query history store configuration
type HistoryConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse parses configuration from YAML bytes and applies defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = constants.DefaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = constants.DefaultServerPort
	}
	if cfg.Icinga.Timeout == "" {
		cfg.Icinga.Timeout = constants.DefaultIcingaTimeout.String()
	}
	if cfg.History.Path == "" {
		cfg.History.Path = constants.DefaultHistoryPath
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv loads the optional env file and applies credential overrides.
// Environment variables win over the config file so credentials can be kept
// out of the yaml entirely.
func applyEnv(cfg *Config) error {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			return fmt.Errorf("loading env file %q: %w", cfg.EnvFile, err)
		}
	}

	if v := os.Getenv("ICINGA_USERNAME"); v != "" {
		cfg.Icinga.Username = v
	}
	if v := os.Getenv("ICINGA_PASSWORD"); v != "" {
		cfg.Icinga.Password = v
	}

	return nil
}

// IcingaTimeout returns the parsed Icinga request timeout
func (c *Config) IcingaTimeout() time.Duration {
	d, err := time.ParseDuration(c.Icinga.Timeout)
	if err != nil {
		return constants.DefaultIcingaTimeout
	}
	return d
}
