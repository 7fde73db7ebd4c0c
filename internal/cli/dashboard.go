package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolandbouwer/appdash/internal/dashboard"
	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/logger"
	"github.com/rolandbouwer/appdash/internal/poller"
	"github.com/rolandbouwer/appdash/internal/state"
)

// dashboardCommand starts the TUI health dashboard.
func dashboardCommand() error {
	cfg, client, err := loadSetup()
	if err != nil {
		return err
	}

	interval := cfg.Interval
	if intervalFlag > 0 {
		interval = intervalFlag
	}

	store := state.NewStore()
	p := poller.New(client, store, interval, logger.Default())

	model := dashboard.NewModel(store, p, client, cfg.History)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		p.Stop()
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Dashboard exited unexpectedly",
			"Check the terminal supports alternate screen mode")
	}

	// The quit keybinding stops the poller; cover abnormal exits too
	p.Stop()
	return nil
}
