package dictionary

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `CREATE TABLE IF NOT EXISTS words (word TEXT PRIMARY KEY);`

// LoadSQLite reads every row of the words table into memory. The database is
// closed before returning; the list never goes back to disk.
func LoadSQLite(path string) (*WordList, error) {
	path = expandHome(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dictionary: cannot open %s: %w", path, err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT word FROM words")
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("dictionary: cannot scan row: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: row iteration error: %w", err)
	}

	list := New(words)
	if list.Len() == 0 {
		return nil, fmt.Errorf("dictionary: %s contains no words", path)
	}
	return list, nil
}

// ImportSQLite stores words in the database at path, creating the file and
// schema if needed. Words are lowercased; duplicates are ignored. It returns
// the number of rows actually inserted.
func ImportSQLite(path string, words []string) (int, error) {
	path = expandHome(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("dictionary: cannot create directory %s: %w", dir, err)
	}

	db, err := openDB(path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return 0, fmt.Errorf("dictionary: migration failed: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("dictionary: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO words (word) VALUES (?)")
	if err != nil {
		return 0, fmt.Errorf("dictionary: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, word := range words {
		if word = normalize(word); word == "" {
			continue
		}
		result, err := stmt.Exec(word)
		if err != nil {
			return 0, fmt.Errorf("dictionary: cannot insert %q: %w", word, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("dictionary: cannot get affected rows: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("dictionary: cannot commit: %w", err)
	}
	return inserted, nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("dictionary: cannot connect to database: %w", err)
	}
	return db, nil
}
