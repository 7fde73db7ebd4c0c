package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolandbouwer/appdash/internal/config"
	"github.com/rolandbouwer/appdash/internal/remote"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// Global flags available to all subcommands
var (
	configFlag  string
	apiFlag     string
	noColorFlag bool
)

// rootCmd is the base command; running it with no subcommand opens the
// dashboard.
var rootCmd = &cobra.Command{
	Use:   "appdash",
	Short: "Application health at a glance",
	Long: `appdash is a terminal dashboard for the application health service.

It polls the service for your applications and their health checks,
shows them as live status cards split into production and non-production,
and lets you manage applications and tags from the command line.

Running appdash with no subcommand opens the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "health service URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "refresh interval (defaults to interval from config)")
}

// Execute runs the root command and prints structured errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// loadSetup loads the config and builds a remote client from it, applying
// the --api override.
func loadSetup() (*config.Config, *remote.Client, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, nil, err
	}

	if apiFlag != "" {
		cfg.APIURL = apiFlag
		if err := config.Validate(cfg); err != nil {
			return nil, nil, err
		}
	}

	client, err := remote.NewClient(cfg.APIURL)
	if err != nil {
		return nil, nil, err
	}

	return cfg, client, nil
}
