package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rolandbouwer/appdash/internal/trend"
	"github.com/rolandbouwer/appdash/internal/ui"
)

const trendSparklineWidth = 40

// trendsCommand prints the health-check history for one application:
// sparklines for response time and uptime plus the recent raw checks.
func trendsCommand(name string, limit int) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cfg, client, err := loadSetup()
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = cfg.History
	}

	apps, err := client.ListApplications(ctx)
	if err != nil {
		return err
	}
	app, err := findAppByName(apps, name)
	if err != nil {
		return err
	}

	checks, err := client.HealthChecks(ctx, app.ID)
	if err != nil {
		return err
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.ColorNeonPink))
	b.WriteString(title.Render(app.Name) + "  " + ui.MutedStyle().Render(app.URL) + "\n\n")

	if len(checks) == 0 {
		b.WriteString(ui.MutedStyle().Render("No health checks recorded yet.") + "\n")
		fmt.Println(b.String())
		return nil
	}

	points := trend.ChartSeries(checks)
	if len(points) > limit {
		points = points[len(points)-limit:]
	}

	b.WriteString(ui.MutedStyle().Render("Response time") + "\n")
	b.WriteString(ui.RenderSparkline(trend.ResponseValues(points), trendSparklineWidth,
		lipgloss.Color(ui.ColorNeonCyan)) + "\n")
	latest := points[len(points)-1]
	if latest.Response != nil {
		b.WriteString(ui.MutedStyle().Render(
			fmt.Sprintf("latest %s at %s", trend.FormatResponseTime(*latest.Response), latest.Time)) + "\n")
	}
	b.WriteString("\n")

	ups := trend.UptimeValues(points)
	passed := 0
	for _, v := range ups {
		if v > 0 {
			passed++
		}
	}
	b.WriteString(ui.MutedStyle().Render("Uptime") + "\n")
	b.WriteString(ui.RenderUptimeBar(ups, trendSparklineWidth) + "\n")
	b.WriteString(ui.MutedStyle().Render(
		fmt.Sprintf("%d/%d checks passed", passed, len(ups))) + "\n\n")

	b.WriteString(ui.MutedStyle().Render("Recent checks") + "\n")
	columns := []ui.TableColumn{
		{Title: "TIME", Width: 10},
		{Title: "STATUS", Width: 8},
		{Title: "RESPONSE", Width: 10},
	}
	rows := make([][]string, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		status := ui.SymbolDown + " down"
		if p.Up > 0 {
			status = ui.SymbolUp + " up"
		}
		response := "-"
		if p.Response != nil {
			response = trend.FormatResponseTime(*p.Response)
		}
		rows = append(rows, []string{p.Time, status, response})
	}
	b.WriteString(ui.RenderSimpleTable(columns, rows))

	fmt.Println(b.String())
	return nil
}
