// Package tui is an interactive terminal front end for filesystem searches.
package tui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jparise/fsfind/internal/config"
	"github.com/jparise/fsfind/internal/registry"
	"github.com/jparise/fsfind/internal/reveal"
)

// Options configures the interactive UI.
type Options struct {
	Root         string
	Settings     *config.Settings
	SettingsPath string // Where the layout is saved on exit ("" = don't save)
	Engines      map[string]registry.Factory
	Reveal       func(path string) error // nil = reveal in the system file browser

	// Session overrides. They apply to this run only and are never saved.
	Algorithm string        // Initially selected algorithm ("" = from Settings)
	Jobs      int           // PBFS listing concurrency (0 = from Settings)
	Interval  time.Duration // Queue polling cadence (0 = from Settings)
}

var defaultReveal = reveal.Path

// Run shows the search window until the user quits, then saves the layout.
func Run(opts Options) error {
	m := NewModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}

	fm, ok := final.(*Model)
	if !ok {
		return nil
	}
	fm.stopSearch()
	if opts.SettingsPath == "" {
		return nil
	}

	if err := config.Save(opts.SettingsPath, fm.Settings()); err != nil {
		log.Printf("Failed to save settings: %v", err)
		return err
	}
	log.Printf("Settings saved to %s", opts.SettingsPath)

	return nil
}
