package ui

// Unicode symbols for health status indicators.
const (
	SymbolUp      = "◉" // latest check passed
	SymbolDown    = "✕" // latest check failed
	SymbolUnknown = "◇" // no checks recorded yet
	SymbolRefresh = "◆" // poll cycle in flight
	SymbolWarning = "⚠" // degraded or stale data
)
