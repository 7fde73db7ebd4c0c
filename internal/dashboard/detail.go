package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rolandbouwer/appdash/internal/trend"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// Detail view styles
var (
	detailContainerStyle = lipgloss.NewStyle().
				Padding(1, 2)

	detailSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.ColorGlassBorder).
				Padding(0, 1).
				MarginBottom(1)

	detailTitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorNeonPink).
				Bold(true)
)

// renderDetailView renders the expanded single-application view.
func (m Model) renderDetailView() string {
	var b strings.Builder

	b.WriteString(m.renderDetailHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderDetailContent())
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("esc back | ↑↓ scroll | r refresh | q quit"))

	return detailContainerStyle.Render(b.String())
}

// updateDetailViewportContent refreshes the scrollable portion of the
// detail view.
func (m *Model) updateDetailViewportContent() {
	if m.viewportReady {
		m.detailViewport.SetContent(m.renderDetailContent())
	}
}

// renderDetailHeader renders the application name and status prominently.
func (m Model) renderDetailHeader() string {
	app := m.detailApp

	var statusText string
	check, ok := app.LatestCheck()
	switch {
	case !ok:
		statusText = StatusUnknownStyle.Render(ui.SymbolUnknown + " No checks")
	case check.Up():
		statusText = StatusUpStyle.Render(ui.SymbolUp + " Up")
	default:
		statusText = StatusDownStyle.Render(ui.SymbolDown + " Down")
	}

	title := detailTitleStyle.Render(app.Name)
	return fmt.Sprintf("%s  %s  %s", title, statusText, LabelStyle.Render(app.URL))
}

// renderDetailContent renders the sections inside the viewport.
func (m Model) renderDetailContent() string {
	contentWidth := m.width - 6
	if contentWidth < 40 {
		contentWidth = 40
	}

	var b strings.Builder

	if m.detailLoading {
		b.WriteString(detailSectionStyle.Width(contentWidth).Render(
			LabelStyle.Render("Loading check history...")))
		return b.String()
	}

	if m.detailErr != "" {
		b.WriteString(detailSectionStyle.Width(contentWidth).Render(
			StatusDownStyle.Render(ui.SymbolWarning+" "+m.detailErr) + "\n" +
				LabelStyle.Render("Press r to retry on the next cycle")))
		return b.String()
	}

	series := trend.ChartSeries(m.detailChecks)
	if len(series) == 0 {
		b.WriteString(detailSectionStyle.Width(contentWidth).Render(
			LabelStyle.Render("No checks recorded yet")))
		return b.String()
	}

	b.WriteString(m.renderResponseSection(series, contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderUptimeSection(series, contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderRecentChecksSection(series, contentWidth))

	return b.String()
}

// renderResponseSection renders the response-time trend sparkline.
func (m Model) renderResponseSection(series []trend.Point, width int) string {
	var lines []string
	lines = append(lines, detailTitleStyle.Render("Response Time"))
	lines = append(lines, "")

	values := trend.ResponseValues(series)
	graphWidth := width - 4
	if graphWidth < 10 {
		graphWidth = 10
	}

	graph := RenderBrailleSparkline(values, graphWidth/2, 2, ui.ColorNeonCyan)
	for _, gl := range strings.Split(graph, "\n") {
		lines = append(lines, "  "+gl)
	}

	last := series[len(series)-1]
	if last.Response != nil {
		lines = append(lines, LabelStyle.Render(fmt.Sprintf("  latest %s at %s",
			trend.FormatResponseTime(*last.Response), last.Time)))
	} else {
		lines = append(lines, LabelStyle.Render("  latest check had no response at "+last.Time))
	}

	return detailSectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderUptimeSection renders the pass/fail history bar.
func (m Model) renderUptimeSection(series []trend.Point, width int) string {
	var lines []string
	lines = append(lines, detailTitleStyle.Render("Uptime"))
	lines = append(lines, "")

	ups := trend.UptimeValues(series)
	barWidth := width - 4
	if barWidth < 10 {
		barWidth = 10
	}
	lines = append(lines, "  "+ui.RenderUptimeBar(ups, barWidth))

	passed := 0
	for _, v := range ups {
		if v > 0 {
			passed++
		}
	}
	lines = append(lines, LabelStyle.Render(fmt.Sprintf("  %d/%d checks passed", passed, len(ups))))

	return detailSectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// detailRecentChecks caps how many rows the recent-checks list shows.
const detailRecentChecks = 10

// renderRecentChecksSection lists the most recent checks, newest first.
func (m Model) renderRecentChecksSection(series []trend.Point, width int) string {
	var lines []string
	lines = append(lines, detailTitleStyle.Render("Recent Checks"))
	lines = append(lines, "")

	// Series is chronological; walk backwards for newest first
	count := 0
	for i := len(series) - 1; i >= 0 && count < detailRecentChecks; i-- {
		point := series[i]

		var status string
		if point.Up == 1 {
			status = StatusUpStyle.Render(ui.SymbolUp)
		} else {
			status = StatusDownStyle.Render(ui.SymbolDown)
		}

		latency := "-"
		if point.Response != nil {
			latency = trend.FormatResponseTime(*point.Response)
		}

		lines = append(lines, fmt.Sprintf("  %s %s  %s",
			status, LabelStyle.Render(point.Time), ValueStyle.Render(latency)))
		count++
	}

	return detailSectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}
