package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorGlassBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	s.Selected = s.Selected.
		Foreground(ColorPrimary).
		Background(ColorDarkSurface).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// AppTableRow represents an application in the CLI list output.
type AppTableRow struct {
	Status  string // "up", "down", or "" when no checks exist
	Name    string
	URL     string
	Latency string // formatted response time, or "-"
	Tags    string // comma-joined tag names
}

// RenderAppTable renders the application list as a formatted table with a
// colored status glyph per row.
func RenderAppTable(rows []AppTableRow) string {
	if len(rows) == 0 {
		return "No applications"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorGlassBorder)

	var output strings.Builder
	output.WriteString(headerStyle.Render("  STATUS  NAME                  URL                                LATENCY    TAGS"))
	output.WriteString("\n")

	for _, row := range rows {
		var statusIcon string
		switch row.Status {
		case "up":
			statusIcon = SuccessStyle().Render(SymbolUp)
		case "down":
			statusIcon = ErrorStyle().Render(SymbolDown)
		default:
			statusIcon = MutedStyle().Render(SymbolUnknown)
		}

		var latencyStr string
		if row.Status == "down" {
			latencyStr = ErrorStyle().Render(padRight(row.Latency, 11))
		} else {
			latencyStr = MutedStyle().Render(padRight(row.Latency, 11))
		}

		output.WriteString("  " + statusIcon + "       " +
			padRight(row.Name, 22) +
			padRight(row.URL, 35) +
			latencyStr +
			MutedStyle().Render(row.Tags))
		output.WriteString("\n")
	}

	return output.String()
}

// TagTableRow represents a tag in the CLI list output.
type TagTableRow struct {
	ID   string
	Name string
	Apps string // count of applications carrying the tag
}

// RenderTagTable renders the tag list as a formatted table.
func RenderTagTable(rows []TagTableRow) string {
	if len(rows) == 0 {
		return "No tags"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorGlassBorder)

	var output strings.Builder
	output.WriteString(headerStyle.Render("  ID      NAME                  APPS"))
	output.WriteString("\n")

	for _, row := range rows {
		output.WriteString("  " +
			padRight(row.ID, 8) +
			padRight(row.Name, 22) +
			MutedStyle().Render(row.Apps))
		output.WriteString("\n")
	}

	return output.String()
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
