package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .appdash.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// APIURL is the base URL of the application-health service.
	APIURL string `yaml:"api_url" mapstructure:"api_url"`

	// Interval is the delay between the end of one poll cycle and the
	// start of the next.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// History is how many health checks the trends view requests room for.
	History int `yaml:"history" mapstructure:"history"`

	// Export controls report generation.
	Export ExportConfig `yaml:"export" mapstructure:"export"`
}

// ExportConfig controls the PDF report output.
type ExportConfig struct {
	// File is the default output path for `appdash export`.
	File string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults: a local service
// and the service's own 30s check cadence.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		APIURL:   "http://localhost:8000",
		Interval: 30 * time.Second,
		History:  50,
		Export: ExportConfig{
			File: "app-health-report.pdf",
		},
	}
}
