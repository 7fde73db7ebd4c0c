// Package dashboard implements the live TUI for application health.
//
// The dashboard shows every monitored application as a card with its
// latest health check, split into production and non-production segments,
// with search, a detail view per application, and a background poller
// keeping the data fresh.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds display state (snapshot, search, tab, selection)
//   - Update: Processes messages (keystrokes, tick events, check history)
//   - View: Renders the current state to a string for display
//
// The poller runs outside Bubble Tea and writes into a shared store; the
// model re-reads the store snapshot on a 1s UI tick. This keeps network
// latency out of the render loop and means a failed poll cycle simply
// leaves the previous snapshot on screen, flagged by a warning banner.
//
// # Message Flow
//
//  1. tickMsg fires every second and re-reads the store snapshot
//  2. the poller refreshes the store every 30s on its own schedule
//  3. pressing Enter issues fetchChecksCmd for the selected application
//  4. checksMsg arrives with history, feeding the detail view graphs
//
// # Layout Modes
//
// The dashboard adapts to terminal width with three layout modes:
//
//	LayoutMinimal  (<80 cols)  - single column, no tag chips
//	LayoutCompact  (80-120)    - two cards per row
//	LayoutStandard (120+)      - three cards per row
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit (stops the poller)
//	r           - Force refresh
//	/           - Search by name or tag
//	Tab         - Switch production / non-production segment
//	j/k, ↑/↓    - Navigate application list
//	Enter       - Open application detail view
//	Esc         - Back / clear search
//	?           - Toggle help overlay
package dashboard
