package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/platform/tui"
	"github.com/vovakirdan/letterfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start letterfall with a mode picker menu",
	Long: `Start letterfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press Q after game over (or while paused) to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q/Esc        - Quit

Examples:
  letterfall menu
  letterfall menu --fps 30
  letterfall menu --difficulty easy --sound`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := prepare()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.runtime
	var last *tui.Result

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		opts := s.options()
		opts.Runtime = cfg
		result, err := tui.Run(game, opts)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		last = &result

		if !result.Back {
			break // User quit from the game
		}
	}

	if last != nil {
		printResult(*last)
	}
	return nil
}
