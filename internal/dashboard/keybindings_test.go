package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolandbouwer/appdash/internal/remote"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	m, _, poller, _ := testModel()

	handled, cmd := m.HandleKeyMsg(keyMsg("q"))
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, 1, poller.stops)
}

func TestHandleKeyMsg_Refresh(t *testing.T) {
	m, _, poller, _ := testModel()

	handled, _ := m.HandleKeyMsg(keyMsg("r"))
	assert.True(t, handled)
	assert.Equal(t, 1, poller.refreshs)
}

func TestHandleKeyMsg_Navigation(t *testing.T) {
	m, _, _, _ := testModel()
	// Production tab has two apps

	m.HandleKeyMsg(keyMsg("down"))
	assert.Equal(t, 1, m.selected)

	// Clamped at the end of the list
	m.HandleKeyMsg(keyMsg("j"))
	assert.Equal(t, 1, m.selected)

	m.HandleKeyMsg(keyMsg("up"))
	assert.Equal(t, 0, m.selected)

	m.HandleKeyMsg(keyMsg("k"))
	assert.Equal(t, 0, m.selected)

	m.HandleKeyMsg(keyMsg("end"))
	assert.Equal(t, 1, m.selected)

	m.HandleKeyMsg(keyMsg("home"))
	assert.Equal(t, 0, m.selected)
}

func TestHandleKeyMsg_TabSwitchResetsSelection(t *testing.T) {
	m, _, _, _ := testModel()
	m.selected = 1

	handled, _ := m.HandleKeyMsg(keyMsg("tab"))
	assert.True(t, handled)
	assert.Equal(t, TabNonProduction, m.tab)
	assert.Equal(t, 0, m.selected)
}

func TestHandleKeyMsg_EnterOpensDetail(t *testing.T) {
	m, _, _, _ := testModel()

	handled, cmd := m.HandleKeyMsg(keyMsg("enter"))
	assert.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, ViewDetail, m.viewMode)
	assert.Equal(t, "checkout", m.detailApp.Name)
	assert.True(t, m.detailLoading)
}

func TestHandleKeyMsg_EnterWithoutAppsIsNoop(t *testing.T) {
	m, store, _, _ := testModel()
	store.RemoveApplication(1)
	store.RemoveApplication(2)
	store.RemoveApplication(3)
	m.snap = store.Snapshot()

	handled, cmd := m.HandleKeyMsg(keyMsg("enter"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, ViewList, m.viewMode)
}

func TestHandleKeyMsg_EscClosesDetail(t *testing.T) {
	m, _, _, _ := testModel()
	m.viewMode = ViewDetail
	m.detailChecks = []remote.HealthCheck{{ID: 1, Status: remote.StatusUp}}

	handled, _ := m.HandleKeyMsg(keyMsg("esc"))
	assert.True(t, handled)
	assert.Equal(t, ViewList, m.viewMode)
	assert.Nil(t, m.detailChecks)
}

func TestHandleKeyMsg_HelpToggle(t *testing.T) {
	m, _, _, _ := testModel()

	m.HandleKeyMsg(keyMsg("?"))
	assert.True(t, m.showHelp)

	m.HandleKeyMsg(keyMsg("esc"))
	assert.False(t, m.showHelp)
}

func TestHandleKeyMsg_SearchFocus(t *testing.T) {
	m, _, _, _ := testModel()

	handled, _ := m.HandleKeyMsg(keyMsg("/"))
	assert.True(t, handled)
	assert.True(t, m.searching)
}

func TestHandleKeyMsg_EscClearsSearch(t *testing.T) {
	m, _, _, _ := testModel()
	m.search.SetValue("pay")

	m.HandleKeyMsg(keyMsg("esc"))
	assert.Empty(t, m.Query())
}

func TestUpdateSearch_TypingFilters(t *testing.T) {
	m, _, _, _ := testModel()
	m.searching = true
	m.search.Focus()

	updated, _ := m.Update(keyMsg("p"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("a"))
	m = updated.(Model)

	assert.Equal(t, "pa", m.Query())
	require.Len(t, m.visibleApps(), 1)
	assert.Equal(t, "payments", m.visibleApps()[0].Name)

	// Enter commits the search and returns focus to the list
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)
	assert.False(t, m.searching)
	assert.Equal(t, "pa", m.Query())
}

func TestUpdateSearch_EscAbandons(t *testing.T) {
	m, _, _, _ := testModel()
	m.searching = true
	m.search.Focus()
	m.search.SetValue("zzz")

	updated, _ := m.Update(keyMsg("esc"))
	m = updated.(Model)

	assert.False(t, m.searching)
	assert.Empty(t, m.Query())
}
