package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/platform/tui"
	"github.com/vovakirdan/letterfall/internal/registry"
)

const defaultMode = "classic"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (classic when omitted).

Modes:
  classic - 3 lives, full-board clears score double
  strict  - classic, but every letter of the word must be on the board
  zen     - no lives, one point per letter

Controls:
  a-z        - Type a word
  Enter      - Submit the word
  Ctrl+U     - Clear the input
  Esc        - Pause/resume
  Ctrl+R     - Restart
  R          - Play again (after game over)
  Tab        - Accepted words (after game over)
  Q          - Back (paused or after game over)
  Ctrl+C     - Quit

Words rejected as "not a word" are missing from the dictionary. The
built-in list is small; see 'letterfall words import --help'.

Difficulty options:
  easy   - 5 lives, slower letters, fewer spawns
  normal - Defaults from config
  hard   - 2 lives, faster letters, more spawns

Examples:
  letterfall play
  letterfall play strict
  letterfall play zen --difficulty hard
  letterfall play --seed 42 --config ./my-letterfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'letterfall list' to see available modes)", gameID)
	}

	s, err := prepare()
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	result, err := tui.Run(game, s.options())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printResult(result)
	return nil
}

// printResult writes a one-line score summary after the TUI exits.
func printResult(r tui.Result) {
	st := tui.Summarize(r.History)
	if st.Words == 0 {
		fmt.Printf("Score: %s\n", humanize.Comma(int64(r.Score)))
		return
	}
	fmt.Printf("Score: %s (%d %s, %d bonus, best %s)\n",
		humanize.Comma(int64(r.Score)),
		st.Words, plural(st.Words, "word", "words"),
		st.Bonuses, st.Best.Word)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
