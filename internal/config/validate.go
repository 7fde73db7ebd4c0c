package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rolandbouwer/appdash/internal/errors"
)

// MinInterval guards against hammering the health service; the service
// itself only records a new check every 30s.
const MinInterval = 5 * time.Second

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but appdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Update appdash, or regenerate the config with 'appdash init'")
	}

	if strings.TrimSpace(cfg.APIURL) == "" {
		return errors.New(errors.ErrConfig,
			"api_url is required",
			"Set api_url to the health service, e.g. http://localhost:8000")
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' is not a valid api_url", cfg.APIURL),
			"Use a full URL like http://localhost:8000")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use %s or longer; the service records a new check every 30s", MinInterval))
	}

	if cfg.History <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history must be positive, got %d", cfg.History),
			"Use something like 50")
	}

	if strings.TrimSpace(cfg.Export.File) == "" {
		return errors.New(errors.ErrConfig,
			"export.file cannot be blank",
			"Use a path ending in .pdf, e.g. app-health-report.pdf")
	}

	return nil
}
