// Package ui provides terminal UI components shared by appdash's CLI
// output and the dashboard TUI.
//
// The package includes the color palette, status symbols, sparklines, and
// table rendering using the Lip Gloss library for consistent terminal
// styling across all commands.
//
// # Color Scheme
//
// Colors are defined as hex values and degrade on lesser terminals:
//
//	ColorSuccess   (neon green)  - Healthy applications
//	ColorError     (red-pink)    - Failing checks and errors
//	ColorWarning   (amber)       - Warnings and stale data
//	ColorInfo      (cyan)        - Informational messages
//	ColorMuted     (purple-gray) - Secondary text, timing info
//	ColorSecondary (lavender)    - Taglines, labels
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolUp      - latest health check passed
//	SymbolDown    - latest health check failed
//	SymbolUnknown - no checks recorded yet
//	SymbolRefresh - poll cycle in flight
//	SymbolWarning - degraded or stale data
//
// # Sparklines
//
// RenderSparkline plots response times as 8-level block characters;
// RenderUptimeBar plots pass/fail history as full or ground-level blocks:
//
//	ui.RenderSparkline(responses, 30, ui.ColorNeonCyan)
//	ui.RenderUptimeBar(ups, 30)
//
// # Tables
//
// RenderAppTable and RenderTagTable produce the non-interactive tables
// used by 'appdash apps list' and 'appdash tags list'. NewTable wraps the
// Bubbles table component for interactive use.
package ui
