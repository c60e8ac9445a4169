package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/RavuAlHemio/icingcake/internal/domain"
)

// Validate checks the configuration for errors
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 0 and 65535, got %d", cfg.Server.Port))
	}

	if cfg.Icinga.BaseURL == "" {
		errs = append(errs, "icinga.base_url: base URL is required")
	} else {
		u, err := url.Parse(cfg.Icinga.BaseURL)
		if err != nil {
			errs = append(errs, fmt.Sprintf("icinga.base_url: %v", err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Sprintf("icinga.base_url: scheme must be http or https, got %q", u.Scheme))
		}
	}

	if cfg.Icinga.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Icinga.Timeout); err != nil {
			errs = append(errs, fmt.Sprintf("icinga.timeout: %v", err))
		} else if d <= 0 {
			errs = append(errs, fmt.Sprintf("icinga.timeout: must be positive, got %s", d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
