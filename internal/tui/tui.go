// Package tui is the interactive shopping list screen. It renders snapshots published
// by a shoplist.Controller and turns key presses into controller intents.
package tui

import (
	"shoplist-cli/internal/config"
	"shoplist-cli/internal/shoplist"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Config *config.Config
	// DebugLogPath enables debug logging to a file.
	DebugLogPath string
}

// Run opens the screen with a fresh, empty list and blocks until the user quits.
// The list is discarded on exit.
func Run(opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()
	applyGlyphPreference(opts.Config.Glyphs())

	log, closer := newDebugLogger(opts.DebugLogPath)
	defer closer.Close()
	log.Debug("screen opened")

	ctrl := shoplist.NewController(shoplist.WithLogger(log))
	m := newAppModel(ctrl, appOptions{cfg: opts.Config, log: log})
	defer m.close()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	log.Debug("screen closed", "error", err)
	return err
}
