// letterfall is a falling-letters typing game for the terminal.
//
// Usage:
//
//	letterfall list                        - List available modes
//	letterfall play [mode]                 - Play a mode (default: classic)
//	letterfall menu                        - Pick modes interactively
//	letterfall words check <word>...       - Look words up in the dictionary
//	letterfall words import <src> <dst.db> - Build a SQLite word list
//	letterfall config                      - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--words <path>        - Word list (text or .db)
//	--log <path>          - Write logs to a file
//	--sound               - Play feedback tones
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/letterfall/internal/games/letterfall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagWords      string
	flagLog        string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "letterfall",
	Short: "Letterfall - catch falling letters by typing words",
	Long: `Letterfall drops letters down the screen. Type a word using the
letters on the board and press Enter to claim them before they hit the
bottom. Clear the whole board with one word for a bonus.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  words    - Dictionary tools
  config   - Print the effective configuration

Dictionary:
  The built-in list holds about 2,400 short words. For a full
  dictionary run 'letterfall words import <src> <dst.db>' once and pass
  the result with --words or dictionary.path in the config.

Environment (also read from .env):
  LETTERFALL_CONFIG, LETTERFALL_WORDS, LETTERFALL_LOG, LETTERFALL_FPS,
  LETTERFALL_VOLUME (0-100)

Examples:
  letterfall play
  letterfall play zen --difficulty easy
  letterfall menu --sound
  letterfall words check cat dog
  letterfall play --words ~/.letterfall/words.db`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Word list file (one word per line, or a .db built by 'words import')")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play feedback tones")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv fills flags the user did not set from the environment and .env.
func loadEnv(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	flags := cmd.Flags()
	if !flags.Changed("config") {
		flagConfig = config.GetEnv("LETTERFALL_CONFIG", flagConfig)
	}
	if !flags.Changed("words") {
		flagWords = config.GetEnv("LETTERFALL_WORDS", flagWords)
	}
	if !flags.Changed("log") {
		flagLog = config.GetEnv("LETTERFALL_LOG", flagLog)
	}
	if !flags.Changed("fps") {
		flagFPS = config.GetEnvInt("LETTERFALL_FPS", flagFPS)
	}
	if flagFPS < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", flagFPS)
	}
	return nil
}
