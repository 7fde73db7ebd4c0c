package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rolandbouwer/appdash/internal/ui"
)

// renderDashboard renders the complete list view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if banner := m.renderBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	b.WriteString(m.renderAppCards())

	if m.ShowFooter() {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderHeader renders the dashboard header with summary stats.
func (m Model) renderHeader() string {
	total := len(m.snap.Applications)
	up := m.UpCount()

	var updateText string
	switch {
	case m.snap.Loading:
		updateText = "loading"
	case m.snap.LastChecked.IsZero():
		updateText = "never"
	default:
		seconds := m.SecondsSinceUpdate()
		switch seconds {
		case 0:
			updateText = "just now"
		case 1:
			updateText = "1s ago"
		default:
			updateText = fmt.Sprintf("%ds ago", seconds)
		}
	}

	title := lipgloss.NewStyle().
		Foreground(ui.ColorNeonPink).
		Bold(true).
		Render("appdash")

	stats := LabelStyle.Render(fmt.Sprintf(" | %d apps | %d up | checked %s", total, up, updateText))

	refreshing := ""
	if m.snap.Refreshing {
		refreshing = " " + lipgloss.NewStyle().Foreground(ui.ColorNeonAmber).Render(m.RefreshSpinner())
	}

	return HeaderStyle.Render(title + stats + refreshing)
}

// renderBanner renders the stale-data warning after a failed poll cycle.
func (m Model) renderBanner() string {
	if m.snap.Err == "" {
		return ""
	}
	return BannerStyle.Render(ui.SymbolWarning + " showing last known data: " + m.snap.Err)
}

// renderTabs renders the segment tabs and the search field.
func (m Model) renderTabs() string {
	production, nonProduction := m.segmentCounts()

	prodLabel := fmt.Sprintf("Production (%d)", production)
	nonProdLabel := fmt.Sprintf("Non-Production (%d)", nonProduction)

	var tabs string
	if m.tab == TabProduction {
		tabs = TabActiveStyle.Render(prodLabel) + "   " + TabInactiveStyle.Render(nonProdLabel)
	} else {
		tabs = TabInactiveStyle.Render(prodLabel) + "   " + TabActiveStyle.Render(nonProdLabel)
	}

	search := ""
	if m.searching {
		search = "  " + m.search.View()
	} else if m.Query() != "" {
		search = "  " + LabelStyle.Render("filter: "+m.Query())
	}

	return " " + tabs + search
}

// renderAppCards renders the grid of application cards.
func (m Model) renderAppCards() string {
	apps := m.visibleApps()
	if len(apps) == 0 {
		if m.snap.Loading {
			return LabelStyle.Render(" Loading applications...")
		}
		if m.Query() != "" {
			return LabelStyle.Render(" No applications match '" + m.Query() + "'")
		}
		return LabelStyle.Render(" No " + m.tab.String() + " applications")
	}

	cardWidth := m.calculateCardWidth()

	var cards []string
	for i, app := range apps {
		cards = append(cards, m.renderCard(app, cardWidth, i == m.selected))
	}

	return m.layoutCards(cards, cardWidth)
}

// calculateCardWidth determines the optimal card width based on terminal width.
func (m Model) calculateCardWidth() int {
	if m.width == 0 {
		return 40 // Default width
	}

	if m.width >= BreakpointCompact {
		return 38
	}
	return m.width - 4 // Single column with margin
}

// layoutCards arranges cards in rows based on terminal width.
func (m Model) layoutCards(cards []string, cardWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	cardsPerRow := 1
	if m.width > 0 {
		// Account for card margins and borders
		effectiveCardWidth := cardWidth + 3
		cardsPerRow = m.width / effectiveCardWidth
		if cardsPerRow < 1 {
			cardsPerRow = 1
		}
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"/ search",
		"tab segment",
		"↑↓ select",
		"enter detail",
		"? help",
	}

	return FooterStyle.Render(strings.Join(hints, " | "))
}
