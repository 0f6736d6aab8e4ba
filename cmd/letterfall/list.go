package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
	"github.com/vovakirdan/letterfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long: `Shows every registered mode with its lives and scoring, as the
current config and --difficulty would play it.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	writeModes(cmd.OutOrStdout(), registry.List(), cfg.Rules)
	return nil
}

// writeModes prints the mode table with one rules summary per mode.
func writeModes(w io.Writer, games []registry.GameInfo, rules config.Rules) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No modes available.")
		return
	}

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title,
			letterfall.Mode(g.ID).Describe(rules))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'letterfall play <id>' to play a mode.")
}
