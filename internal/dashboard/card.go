package dashboard

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rolandbouwer/appdash/internal/remote"
	"github.com/rolandbouwer/appdash/internal/trend"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// cardDividerStyle creates a subtle divider line with matching background
var cardDividerStyle = lipgloss.NewStyle().
	Foreground(ui.ColorGlassBorder)

// renderCardDivider creates a subtle thin divider line
func renderCardDivider(width int) string {
	return cardDividerStyle.Render(strings.Repeat("─", width))
}

// truncateWithEllipsis truncates a string to maxLen, adding ellipsis if needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}

// renderCardLine pads a line of content to the card's inner width.
func renderCardLine(content string, width int) string {
	contentWidth := lipgloss.Width(content)
	if width > contentWidth {
		return content + strings.Repeat(" ", width-contentWidth)
	}
	return content
}

// renderCard renders a single application card.
func (m Model) renderCard(app remote.Application, width int, selected bool) string {
	style := CardStyle.Width(width)
	if selected {
		style = CardSelectedStyle.Width(width)
	}

	// Inner width for content (account for card padding)
	innerWidth := width - 4

	var lines []string

	lines = append(lines, renderCardLine(m.renderStatusLine(app), innerWidth))
	lines = append(lines, renderCardDivider(innerWidth))

	url := truncateWithEllipsis(app.URL, innerWidth)
	lines = append(lines, renderCardLine(LabelStyle.Render(url), innerWidth))

	lines = append(lines, renderCardLine(m.renderLatencyLine(app, innerWidth), innerWidth))

	if m.LayoutMode() != LayoutMinimal {
		if tagLine := renderTagChips(app, innerWidth); tagLine != "" {
			lines = append(lines, renderCardDivider(innerWidth))
			lines = append(lines, renderCardLine(tagLine, innerWidth))
		}
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderStatusLine renders the application name with its status indicator.
func (m Model) renderStatusLine(app remote.Application) string {
	var indicator string

	check, ok := app.LatestCheck()
	switch {
	case !ok:
		indicator = StatusUnknownStyle.Render(ui.SymbolUnknown)
	case check.Up():
		indicator = StatusUpStyle.Render(ui.SymbolUp)
	default:
		indicator = StatusDownStyle.Render(ui.SymbolDown)
	}

	return indicator + " " + AppNameStyle.Render(app.Name)
}

// renderLatencyLine renders the latest response time and check age,
// right-aligned against the "HEALTH" label.
func (m Model) renderLatencyLine(app remote.Application, lineWidth int) string {
	label := LabelStyle.Render("HEALTH")

	var right string
	check, ok := app.LatestCheck()
	switch {
	case !ok:
		right = LabelStyle.Render("no checks yet")
	case check.ResponseTime != nil:
		latency := ValueStyle.Render(trend.FormatResponseTime(*check.ResponseTime))
		right = latency + " " + LabelStyle.Render(formatAge(check.CheckedAt))
	default:
		right = StatusDownStyle.Render("-") + " " + LabelStyle.Render(formatAge(check.CheckedAt))
	}

	rightWidth := lipgloss.Width(right)
	padding := ""
	if lineWidth > lipgloss.Width(label)+rightWidth {
		padding = strings.Repeat(" ", lineWidth-lipgloss.Width(label)-rightWidth)
	}
	return label + padding + right
}

// renderTagChips renders the application's tags as a chip row.
func renderTagChips(app remote.Application, maxWidth int) string {
	if len(app.Tags) == 0 {
		return ""
	}

	var chips []string
	for _, tag := range app.Tags {
		chips = append(chips, TagChipStyle.Render("#"+tag.Name))
	}

	line := strings.Join(chips, " ")
	if lipgloss.Width(line) > maxWidth {
		// Tags rarely fit on narrow cards; drop to a count
		return TagChipStyle.Render("#" + app.Tags[0].Name + " +" + strconv.Itoa(len(app.Tags)-1))
	}
	return line
}

// formatAge renders how long ago a check ran.
func formatAge(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	seconds := int(time.Since(t).Seconds())
	switch {
	case seconds < 1:
		return "now"
	case seconds < 60:
		return strconv.Itoa(seconds) + "s"
	case seconds < 3600:
		return strconv.Itoa(seconds/60) + "m"
	default:
		return strconv.Itoa(seconds/3600) + "h"
	}
}
