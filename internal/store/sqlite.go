// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/remaimber-it/quiz/internal/domain/questionbank"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    position INTEGER PRIMARY KEY,
    question_text TEXT NOT NULL,
    options TEXT NOT NULL,
    correct_option_key TEXT NOT NULL CHECK (correct_option_key IN ('a', 'b', 'c', 'd')),
    explanation TEXT NOT NULL
);
`

// SQLiteStore keeps a question bank in a SQLite file. The bank is read once at
// startup; nothing is written while the quiz runs.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveQuestions replaces the stored bank with questions, keeping their order.
func (s *SQLiteStore) SaveQuestions(ctx context.Context, questions []questionbank.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (position, question_text, options, correct_option_key, explanation)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, i, q.Text, string(options), string(q.CorrectKey), q.Explanation); err != nil {
			return fmt.Errorf("insert question %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadQuestions returns the stored questions ordered by position.
// It returns ErrNotFound when the table is empty.
func (s *SQLiteStore) LoadQuestions(ctx context.Context) ([]questionbank.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_text, options, correct_option_key, explanation
		FROM questions
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []questionbank.Question
	for rows.Next() {
		var (
			q       questionbank.Question
			options string
			key     string
		)
		if err := rows.Scan(&q.Text, &options, &key, &q.Explanation); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
		q.CorrectKey = questionbank.Letter(key)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return questions, nil
}
