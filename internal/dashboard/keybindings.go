package dashboard

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeySearch      = "/"
	KeySwitchTab   = "tab"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyExpand      = "enter"
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	// Detail view: Esc returns to list
	if m.viewMode == ViewDetail && key == KeyCollapse {
		m.viewMode = ViewList
		m.detailChecks = nil
		m.detailErr = ""
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		m.poller.Stop()
		return true, tea.Quit

	case KeyRefresh:
		m.poller.Refresh()
		return true, nil

	case KeySearch:
		if m.viewMode == ViewList {
			m.searching = true
			return true, m.search.Focus()
		}
		return true, nil

	case KeySwitchTab:
		if m.viewMode == ViewList {
			m.tab = m.tab.Next()
			m.selected = 0
		}
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.viewMode == ViewDetail {
			m.detailViewport.ScrollUp(1)
			return true, nil
		}
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.viewMode == ViewDetail {
			m.detailViewport.ScrollDown(1)
			return true, nil
		}
		if m.selected < len(m.visibleApps())-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		if apps := m.visibleApps(); len(apps) > 0 {
			m.selected = len(apps) - 1
		}
		return true, nil

	case KeyExpand:
		if m.viewMode != ViewList {
			return true, nil
		}
		app, ok := m.SelectedApp()
		if !ok {
			return true, nil
		}
		m.viewMode = ViewDetail
		m.detailApp = app
		m.detailChecks = nil
		m.detailErr = ""
		m.detailLoading = true
		m.updateDetailViewportContent()
		return true, m.fetchChecksCmd(app.ID)

	case KeyCollapse:
		if m.searching || m.Query() != "" {
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.clampSelection()
		}
		return true, nil
	}

	return false, nil
}
