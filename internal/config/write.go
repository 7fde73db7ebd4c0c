package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rolandbouwer/appdash/internal/errors"
)

// fileHeader is written above the YAML so a freshly generated config
// explains itself.
const fileHeader = `# appdash configuration
# api_url:  base URL of the application-health service
# interval: delay between poll cycles (min 5s)
# history:  health checks shown in the trends view
`

// Write marshals the config to path, refusing to overwrite an existing
// file unless force is set.
func Write(cfg *Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' already exists", path),
				"Re-run with --force to overwrite it")
		}
	}

	// time.Duration would marshal as raw nanoseconds; write "30s" instead.
	doc := struct {
		Version  int          `yaml:"version"`
		APIURL   string       `yaml:"api_url"`
		Interval string       `yaml:"interval"`
		History  int          `yaml:"history"`
		Export   ExportConfig `yaml:"export"`
	}{
		Version:  cfg.Version,
		APIURL:   cfg.APIURL,
		Interval: cfg.Interval.String(),
		History:  cfg.History,
		Export:   cfg.Export,
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't encode config as YAML", "")
	}

	out := append([]byte(fileHeader), data...)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't write "+path,
			"Check directory permissions")
	}
	return nil
}
