package cmd

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jparise/fsfind/internal/tui"
	"github.com/spf13/cobra"
)

var logFile string

var tuiCmd = &cobra.Command{
	Use:   "tui [<folder>]",
	Short: "Search interactively",
	Long: `Open an interactive search window.

Tab moves between fields, space toggles options, Enter starts a search and
Esc stops it. Enter on a result reveals it in the system file browser.
Window layout changes are saved to the settings file on exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The terminal belongs to the UI, so diagnostics go to a file or nowhere.
		if logFile != "" {
			f, err := tea.LogToFile(logFile, "fsfind")
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}

		engines, err := discoverEngines()
		if err != nil {
			return err
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		return tui.Run(tui.Options{
			Root:         root,
			Settings:     settings,
			SettingsPath: settingsPath,
			Engines:      engines,
			Algorithm:    algorithm,
			Jobs:         jobs,
			Interval:     interval,
		})
	},
}

func init() {
	tuiCmd.Flags().StringVar(&logFile, "log-file", "",
		"write diagnostic messages to this file")
}
