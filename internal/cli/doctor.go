package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rolandbouwer/appdash/internal/doctor"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// doctorCmd diagnoses configuration and service issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and service issues",
	Long: `Run diagnostic checks against the local configuration and the
health service:

  - Config file present and valid
  - Health service reachable
  - Applications registered with check history

Examples:
  appdash doctor
  appdash doctor --api http://health.example.com:8000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func doctorCommand() error {
	checks := []doctor.Check{
		&doctor.ConfigFileCheck{ConfigPath: configFlag},
		&doctor.ConfigValidCheck{ConfigPath: configFlag},
	}

	// Service checks need a client; config failures surface above instead
	if _, client, err := loadSetup(); err == nil {
		checks = append(checks,
			&doctor.ServiceReachableCheck{Client: client},
			&doctor.ServiceDataCheck{Client: client},
		)
	}

	results := doctor.RunAll(checks)
	outputDoctorText(checks, results)
	return nil
}

func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) {
	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorSuccess))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorError))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorWarning))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorMuted))
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("appdash Diagnostic Report"))
	fmt.Println()

	categoryOrder := []string{"CONFIG", "SERVICE"}
	grouped := make(map[string][]int)
	for i, check := range checks {
		cat := check.Category()
		grouped[cat] = append(grouped[cat], i)
	}

	for _, category := range categoryOrder {
		indices, ok := grouped[category]
		if !ok || len(indices) == 0 {
			continue
		}

		fmt.Println(headerStyle.Render(category))
		for _, idx := range indices {
			renderCheckResult(results[idx], successStyle, errorStyle, warnStyle, mutedStyle)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	if doctor.HasFailures(results) {
		fmt.Printf("%s %s\n", errorStyle.Render("✗"), doctor.Summary(results))
	} else {
		fmt.Printf("%s %s\n", successStyle.Render("✓"), doctor.Summary(results))
	}
	fmt.Println()
}

func renderCheckResult(result doctor.CheckResult, successStyle, errorStyle, warnStyle, mutedStyle lipgloss.Style) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = "✓"
		style = successStyle
	case doctor.StatusWarn:
		symbol = ui.SymbolWarning
		style = warnStyle
	case doctor.StatusFail:
		symbol = "✗"
		style = errorStyle
	}

	fmt.Printf("  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Printf("    %s\n", mutedStyle.Render(line))
		}
	}
}
