package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/remaimber-it/quiz/internal/domain/questionbank"
)

var (
	ErrNotFound = errors.New("not found")
)

// IsSQLitePath reports whether source names a SQLite bank file.
func IsSQLitePath(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// LoadBank builds the question bank from source: the embedded seed when source is
// empty, a SQLite file for .db/.sqlite/.sqlite3, or a YAML/JSON bank file otherwise.
func LoadBank(ctx context.Context, source string) (*questionbank.Bank, error) {
	switch {
	case source == "":
		return questionbank.Default()
	case IsSQLitePath(source):
		return loadSQLiteBank(ctx, source)
	default:
		return questionbank.LoadFile(source)
	}
}

func loadSQLiteBank(ctx context.Context, path string) (*questionbank.Bank, error) {
	db, err := NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank %s: %w", path, err)
	}
	defer db.Close()

	questions, err := db.LoadQuestions(ctx)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("question bank %s: %w", path, questionbank.ErrEmptyBank)
	}
	if err != nil {
		return nil, fmt.Errorf("load question bank %s: %w", path, err)
	}
	return questionbank.New(questions)
}
