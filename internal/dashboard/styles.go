package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rolandbouwer/appdash/internal/ui"
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
)

// Height breakpoint for the footer
const HeightMinimal = 20

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 80 columns: single column, no tag chips
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 80-120 columns: two cards per row
	LayoutCompact
	// LayoutStandard is for terminals 120+ columns: three cards per row
	LayoutStandard
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Background(ui.ColorDarkSurface).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ui.ColorNeonPink)

	AppNameStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	TagChipStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonCyan)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink).
			Bold(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted)

	StatusUpStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)

	StatusDownStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError)

	StatusUnknownStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted)
)

// RefreshSpinnerFrames are the animation frames shown while a poll cycle
// is in flight.
var RefreshSpinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// GetLayoutMode returns the layout mode based on terminal width.
func GetLayoutMode(width int) LayoutMode {
	switch {
	case width >= BreakpointStandard:
		return LayoutStandard
	case width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// ShowFooter returns true if the terminal is tall enough for the footer.
func ShowFooter(height int) bool {
	return height >= HeightMinimal
}
