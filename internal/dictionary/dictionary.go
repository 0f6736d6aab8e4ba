// Package dictionary answers word-membership queries against a word list that
// is loaded once and never mutated afterwards.
//
// Lists come from plain text (one word per line, LF or CRLF), from a SQLite
// database, or from the small English list embedded in the binary.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

//go:embed words.txt
var embeddedWords string

// Oracle reports whether a word is recognized.
type Oracle interface {
	IsValid(word string) bool
}

// WordList is an immutable set of lowercase words.
type WordList struct {
	words map[string]struct{}
}

// New builds a list from the given words. Entries are trimmed and lowercased;
// empty entries are dropped.
func New(words []string) *WordList {
	w := &WordList{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		if word = normalize(word); word != "" {
			w.words[word] = struct{}{}
		}
	}
	return w
}

// Parse reads one word per line. Blank lines and lines starting with '#'
// are skipped.
func Parse(r io.Reader) (*WordList, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read failed: %w", err)
	}
	return New(words), nil
}

// Load reads a word list from disk. Files ending in .db, .sqlite or .sqlite3
// are opened as SQLite databases, anything else is parsed as text.
func Load(path string) (*WordList, error) {
	if IsSQLitePath(path) {
		return LoadSQLite(path)
	}

	f, err := os.Open(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %s: %w", path, err)
	}
	if list.Len() == 0 {
		return nil, fmt.Errorf("dictionary: %s contains no words", path)
	}
	return list, nil
}

var (
	defaultOnce sync.Once
	defaultList *WordList
)

// Default returns the embedded word list. It is parsed on first use.
func Default() *WordList {
	defaultOnce.Do(func() {
		list, err := Parse(strings.NewReader(embeddedWords))
		if err != nil {
			panic(fmt.Sprintf("dictionary: embedded list is corrupt: %v", err))
		}
		defaultList = list
	})
	return defaultList
}

// IsValid reports whether the trimmed, lowercased word is in the list.
func (w *WordList) IsValid(word string) bool {
	if w == nil {
		return false
	}
	_, ok := w.words[normalize(word)]
	return ok
}

// Len returns the number of distinct words.
func (w *WordList) Len() int {
	if w == nil {
		return 0
	}
	return len(w.words)
}

// Words returns the list contents in sorted order.
func (w *WordList) Words() []string {
	if w == nil {
		return nil
	}
	out := make([]string, 0, len(w.words))
	for word := range w.words {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// IsSQLitePath reports whether path names a SQLite word list.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
