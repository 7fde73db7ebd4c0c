// Package cli implements the appdash command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small command function for the actual work. The
// general structure keeps a clean separation between:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - Command functions (apps.go, tags.go, export.go, trends.go, ...)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "appdash" with subcommands for different
// operations:
//
//	appdash                       - Open the live dashboard
//	appdash apps [list|add|edit|delete] - Manage applications
//	appdash tags [list|add|delete]      - Manage tags
//	appdash trends <name>         - Health-check history for one app
//	appdash export                - Write the PDF health report
//	appdash init                  - Create .appdash.yaml config
//	appdash doctor                - Diagnose config and service issues
//	appdash version               - Version information
//
// # Setup
//
// Every command starts from loadSetup, which loads the configuration
// (with the --api override applied) and builds a remote client.
// Mutation commands go one step further through loadState, which
// fetches the current applications and tags, seeds a state store, and
// wires a reconciler so optimistic edits confirm or roll back in
// acknowledgment order.
//
// # Flag Handling
//
// Global flags (--config, --api, --no-color) are defined on the root
// command and available to all subcommands. Command-specific flags
// like --name and --tag are defined on individual commands.
//
// Interactive prompts use huh forms; commands fall back to prompts
// when required flags are missing, so both scripted and interactive
// use work from the same subcommand.
package cli
