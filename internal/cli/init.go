package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/rolandbouwer/appdash/internal/config"
	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// initCommand creates a .appdash.yaml in the current directory.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
		force = true
	}

	cfg := config.DefaultConfig()

	var apiURL string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Health service URL").
				Description("Where the dashboard API is running").
				Placeholder(cfg.APIURL).
				Value(&apiURL),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input", "")
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	if err := config.Write(cfg, configPath, force); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle().Render("✓ Created " + config.ConfigFileName))
	fmt.Println(ui.MutedStyle().Render("Run 'appdash' to open the dashboard."))
	return nil
}
