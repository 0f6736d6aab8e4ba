package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/dictionary"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Dictionary tools",
	Long: `Inspect and build word lists.

The dictionary is taken from --words, then dictionary.path in the config,
then the built-in list.`,
}

var wordsCheckCmd = &cobra.Command{
	Use:   "check <word>...",
	Short: "Check whether words are accepted",
	Long: `Looks each word up in the active dictionary. Exits with an error
when any word is unknown.

Examples:
  letterfall words check cat dog
  letterfall words check --words ./my-words.txt zebra`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWordsCheck,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <src> <dst.db>",
	Short: "Import a word list into a SQLite database",
	Long: `Reads words from src (plain text, one word per line, or another .db)
and adds them to the SQLite database dst, creating it when missing.
Existing words are kept.

Examples:
  letterfall words import /usr/share/dict/words ~/.letterfall/words.db
  letterfall play --words ~/.letterfall/words.db`,
	Args: cobra.ExactArgs(2),
	RunE: runWordsImport,
}

var wordsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of words in the active dictionary",
	Args:  cobra.NoArgs,
	RunE:  runWordsCount,
}

func init() {
	wordsCmd.AddCommand(wordsCheckCmd)
	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsCountCmd)
}

func activeDictionary() (*dictionary.WordList, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return loadDictionary(cfg)
}

func runWordsCheck(_ *cobra.Command, args []string) error {
	words, err := activeDictionary()
	if err != nil {
		return err
	}

	var unknown []string
	for _, w := range args {
		status := "ok"
		if !words.IsValid(w) {
			status = "unknown"
			unknown = append(unknown, w)
		}
		fmt.Printf("  %-16s %s\n", strings.ToUpper(w), status)
	}

	if len(unknown) > 0 {
		return unknownWordsError(len(unknown), len(args), words == dictionary.Default())
	}
	return nil
}

// importHint points users of the built-in list at a full dictionary.
const importHint = `the built-in list only holds short common words; build a full one with
  letterfall words import /usr/share/dict/words ~/.letterfall/words.db
and play with --words ~/.letterfall/words.db`

func unknownWordsError(unknown, total int, builtin bool) error {
	if builtin {
		return fmt.Errorf("%d of %d words not in the dictionary\n%s", unknown, total, importHint)
	}
	return fmt.Errorf("%d of %d words not in the dictionary", unknown, total)
}

func runWordsImport(_ *cobra.Command, args []string) error {
	src, dst := args[0], args[1]
	if !dictionary.IsSQLitePath(dst) {
		return fmt.Errorf("destination %q must end in .db, .sqlite or .sqlite3", dst)
	}

	logger, closeLog, err := newLogger(flagLog, false)
	if err != nil {
		return err
	}
	defer closeLog()

	list, err := dictionary.Load(src)
	if err != nil {
		return err
	}

	added, err := dictionary.ImportSQLite(dst, list.Words())
	if err != nil {
		return err
	}
	logger.Info("words imported", "src", src, "dst", dst, "read", list.Len(), "added", added)

	fmt.Printf("Imported %s new words into %s (%s read)\n",
		humanize.Comma(int64(added)), dst, humanize.Comma(int64(list.Len())))
	return nil
}

func runWordsCount(_ *cobra.Command, _ []string) error {
	words, err := activeDictionary()
	if err != nil {
		return err
	}
	fmt.Println(humanize.Comma(int64(words.Len())))
	return nil
}
