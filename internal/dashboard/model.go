package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolandbouwer/appdash/internal/filter"
	"github.com/rolandbouwer/appdash/internal/remote"
	"github.com/rolandbouwer/appdash/internal/state"
)

// Tab identifies which application segment is displayed.
type Tab int

const (
	TabProduction Tab = iota
	TabNonProduction
)

// String returns a human-readable label for the tab.
func (t Tab) String() string {
	switch t {
	case TabProduction:
		return "production"
	case TabNonProduction:
		return "non-production"
	default:
		return "production"
	}
}

// Next cycles to the other tab.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % 2)
}

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Poller controls the background refresh loop feeding the store.
type Poller interface {
	Start()
	Stop()
	Refresh()
}

// ChecksFetcher loads health-check history for a single application.
type ChecksFetcher interface {
	HealthChecks(ctx context.Context, appID int64) ([]remote.HealthCheck, error)
}

// uiTickInterval is how often the view re-reads the store snapshot.
// The poller writes on its own cadence; this only controls display latency.
const uiTickInterval = time.Second

// spinnerInterval is the animation frame rate for the refresh spinner.
const spinnerInterval = 150 * time.Millisecond

// checksTimeout bounds the detail view history fetch.
const checksTimeout = 10 * time.Second

// Model is the Bubble Tea model for the application health dashboard.
type Model struct {
	store       *state.Store
	poller      Poller
	fetcher     ChecksFetcher
	snap        state.Snapshot
	search      textinput.Model
	searching   bool
	tab         Tab
	selected    int
	viewMode    ViewMode
	showHelp    bool
	quitting    bool
	width       int
	height      int
	historySize int

	// Animation state
	spinnerFrame int

	// Detail view state
	detailApp     remote.Application
	detailChecks  []remote.HealthCheck
	detailErr     string
	detailLoading bool

	detailViewport viewport.Model
	viewportReady  bool
}

// tickMsg signals a periodic snapshot re-read.
type tickMsg time.Time

// spinnerTickMsg signals a spinner animation frame update.
type spinnerTickMsg time.Time

// checksMsg carries health-check history for the detail view.
type checksMsg struct {
	appID  int64
	checks []remote.HealthCheck
	err    error
}

// NewModel creates a new dashboard model. The poller is started by Init
// and stopped when the user quits. historySize caps how many checks the
// detail view plots.
func NewModel(store *state.Store, poller Poller, fetcher ChecksFetcher, historySize int) Model {
	search := textinput.New()
	search.Placeholder = "name or tag"
	search.Prompt = "/ "
	search.CharLimit = 64

	return Model{
		store:       store,
		poller:      poller,
		fetcher:     fetcher,
		snap:        store.Snapshot(),
		search:      search,
		historySize: historySize,
	}
}

// Init starts the poller and the tick timers.
func (m Model) Init() tea.Cmd {
	poller := m.poller
	return tea.Batch(
		func() tea.Msg {
			poller.Start()
			return nil
		},
		m.tickCmd(),
		m.spinnerTickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		m.snap = m.store.Snapshot()
		m.clampSelection()
		return m, m.tickCmd()

	case spinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10000
		return m, m.spinnerTickCmd()

	case checksMsg:
		// Discard results for an application the user already left
		if m.viewMode != ViewDetail || msg.appID != m.detailApp.ID {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.detailErr = msg.err.Error()
		} else {
			m.detailErr = ""
			m.detailChecks = msg.checks
		}
		m.updateDetailViewportContent()
	}

	return m, nil
}

// updateSearch routes key input to the search field while it has focus.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.clampSelection()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampSelection()
	return m, cmd
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay(m.renderDashboard())
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that re-reads the store after the UI interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(uiTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinnerTickCmd returns a command that sends a spinner animation tick.
func (m Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// fetchChecksCmd returns a command that loads check history for one app.
func (m Model) fetchChecksCmd(appID int64) tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), checksTimeout)
		defer cancel()
		checks, err := fetcher.HealthChecks(ctx, appID)
		return checksMsg{appID: appID, checks: checks, err: err}
	}
}

// Query returns the active search text.
func (m Model) Query() string {
	return m.search.Value()
}

// visibleApps returns the applications for the active tab after filtering.
func (m Model) visibleApps() []remote.Application {
	matched := filter.Apply(m.snap.Applications, m.Query())
	segments := filter.Segment(matched)
	if m.tab == TabProduction {
		return segments.Production
	}
	return segments.NonProduction
}

// segmentCounts returns how many filtered apps fall in each segment.
func (m Model) segmentCounts() (production, nonProduction int) {
	matched := filter.Apply(m.snap.Applications, m.Query())
	segments := filter.Segment(matched)
	return len(segments.Production), len(segments.NonProduction)
}

// SelectedApp returns the currently selected application.
func (m Model) SelectedApp() (remote.Application, bool) {
	apps := m.visibleApps()
	if m.selected >= 0 && m.selected < len(apps) {
		return apps[m.selected], true
	}
	return remote.Application{}, false
}

// UpCount returns how many applications in the full snapshot are up.
func (m Model) UpCount() int {
	count := 0
	for _, app := range m.snap.Applications {
		if check, ok := app.LatestCheck(); ok && check.Up() {
			count++
		}
	}
	return count
}

// SecondsSinceUpdate returns seconds since the last successful poll cycle.
func (m Model) SecondsSinceUpdate() int {
	if m.snap.LastChecked.IsZero() {
		return 0
	}
	return int(time.Since(m.snap.LastChecked).Seconds())
}

// RefreshSpinner returns the current spinner character for the refresh
// animation.
func (m Model) RefreshSpinner() string {
	return RefreshSpinnerFrames[m.spinnerFrame%len(RefreshSpinnerFrames)]
}

// LayoutMode returns the current layout mode based on terminal width.
func (m Model) LayoutMode() LayoutMode {
	return GetLayoutMode(m.width)
}

// ShowFooter returns true if the terminal is tall enough to show the footer.
func (m Model) ShowFooter() bool {
	return ShowFooter(m.height)
}

// clampSelection keeps the selected index inside the visible list.
func (m *Model) clampSelection() {
	apps := m.visibleApps()
	if len(apps) == 0 {
		m.selected = 0
		return
	}
	if m.selected >= len(apps) {
		m.selected = len(apps) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
