package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rolandbouwer/appdash/internal/errors"
)

// Command-specific flags
var (
	appsAddName       string
	appsAddURL        string
	appsAddProduction bool
	appsAddTags       []string
	exportOutFlag     string
	exportQueryFlag   string
	intervalFlag      time.Duration
	trendsLimitFlag   int
	initForce         bool
)

// dashboardCmd starts the TUI health dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live application health dashboard",
	Long: `Start the interactive TUI dashboard showing the health of every
monitored application.

Applications appear as status cards split into production and
non-production segments, refreshed every 30 seconds. If a refresh fails
the last known data stays on screen with a warning banner.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh
  /           Search by name or tag
  Tab         Switch segment
  up/k        Select previous application
  down/j      Select next application
  Enter       Open application detail
  Esc         Back / clear search
  ?           Show help

Examples:
  appdash dashboard
  appdash dashboard --api http://health.example.com:8000
  appdash dashboard --interval 10s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

// appsCmd groups application management subcommands
var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Manage monitored applications",
	Long: `List, add, edit, and delete monitored applications.

Examples:
  appdash apps list
  appdash apps add
  appdash apps add --name checkout --url https://checkout.example.com --production
  appdash apps edit checkout
  appdash apps delete checkout`,
}

// appsListCmd prints the application table
var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications with their latest status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return appsListCommand()
	},
}

// appsAddCmd registers a new application
var appsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new application",
	Long: `Register a new application with the health service.

Run without flags for an interactive form, or pass --name and --url
for scripted use.

Examples:
  appdash apps add
  appdash apps add --name checkout --url https://checkout.example.com --production --tag web --tag payments`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return appsAddCommand(appsAddName, appsAddURL, appsAddProduction, appsAddTags)
	},
}

// appsEditCmd updates an existing application
var appsEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit an application",
	Long: `Edit an existing application's name, URL, environment, and tags
through an interactive form pre-filled with the current values.

Examples:
  appdash apps edit checkout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return appsEditCommand(args[0])
	},
}

// appsDeleteCmd removes an application
var appsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an application",
	Long: `Delete an application after confirmation. The record only leaves
local state once the service acknowledges the delete.

Examples:
  appdash apps delete checkout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return appsDeleteCommand(args[0])
	},
}

// tagsCmd groups tag management subcommands
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage tags",
	Long: `List, add, and delete tags. Tags can be renamed only by deleting
and re-adding them; the service has no rename operation.

Examples:
  appdash tags list
  appdash tags add web
  appdash tags delete web`,
}

// tagsListCmd prints the tag table
var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagsListCommand()
	},
}

// tagsAddCmd creates a tag
var tagsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagsAddCommand(args[0])
	},
}

// tagsDeleteCmd removes a tag
var tagsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a tag",
	Long: `Delete a tag after confirmation.

Applications keep showing the tag until the next refresh; the service
strips it from their tag lists server-side.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagsDeleteCommand(args[0])
	},
}

// exportCmd writes the PDF health report
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a PDF health report",
	Long: `Generate a PDF report with one table of production applications
and one of non-production applications, each row showing the latest
status and response time.

Examples:
  appdash export
  appdash export health-reports.pdf
  appdash export --query payments`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := exportOutFlag
		if len(args) > 0 {
			out = args[0]
		}
		return exportCommand(out, exportQueryFlag)
	},
}

// trendsCmd prints check history for one application
var trendsCmd = &cobra.Command{
	Use:   "trends <name>",
	Short: "Show check history for an application",
	Long: `Print the recent health checks for an application: a response-time
sparkline, an uptime bar, and the individual checks in chronological
order.

Examples:
  appdash trends checkout
  appdash trends checkout --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return trendsCommand(args[0], trendsLimitFlag)
	},
}

// initCmd creates a new .appdash.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .appdash.yaml configuration",
	Long: `Initialize a new appdash configuration file in the current
directory with sensible defaults.

Examples:
  appdash init
  appdash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for appdash.

Examples:
  # Bash
  appdash completion bash > /etc/bash_completion.d/appdash

  # Zsh
  appdash completion zsh > "${fpath[1]}/_appdash"

  # Fish
  appdash completion fish > ~/.config/fish/completions/appdash.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrValidation,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// apps add flags
	appsAddCmd.Flags().StringVar(&appsAddName, "name", "", "application name")
	appsAddCmd.Flags().StringVar(&appsAddURL, "url", "", "application URL")
	appsAddCmd.Flags().BoolVar(&appsAddProduction, "production", false, "mark as a production application")
	appsAddCmd.Flags().StringArrayVar(&appsAddTags, "tag", nil, "tag to attach (repeatable)")

	// dashboard flags
	dashboardCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "refresh interval (defaults to interval from config)")

	// export flags
	exportCmd.Flags().StringVar(&exportOutFlag, "out", "", "output file (defaults to export.file from config)")
	exportCmd.Flags().StringVar(&exportQueryFlag, "query", "", "only include applications matching this search")

	// trends flags
	trendsCmd.Flags().IntVar(&trendsLimitFlag, "limit", 0, "max checks to show (defaults to history from config)")

	// init flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	appsCmd.AddCommand(appsListCmd)
	appsCmd.AddCommand(appsAddCmd)
	appsCmd.AddCommand(appsEditCmd)
	appsCmd.AddCommand(appsDeleteCmd)

	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsAddCmd)
	tagsCmd.AddCommand(tagsDeleteCmd)

	// Register all commands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
