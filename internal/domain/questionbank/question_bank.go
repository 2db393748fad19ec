package questionbank

import (
	"errors"
	"fmt"
	"strings"
)

// Letter identifies an answer option by position.
type Letter string

const (
	LetterA Letter = "a"
	LetterB Letter = "b"
	LetterC Letter = "c"
	LetterD Letter = "d"
)

// Letters maps option positions to letter keys: Letters[0] is "a", Letters[3] is "d".
var Letters = [...]Letter{LetterA, LetterB, LetterC, LetterD}

// OptionCount is the number of options every question carries.
const OptionCount = len(Letters)

var (
	ErrInvalidQuestion = errors.New("invalid question")
	ErrEmptyBank       = errors.New("question bank is empty")
	ErrNotFound        = errors.New("question not found")
)

// Index returns the option position for the letter.
func (l Letter) Index() (int, bool) {
	for i, k := range Letters {
		if k == l {
			return i, true
		}
	}
	return -1, false
}

// ParseLetter normalizes raw input (trim + lower case) and reports whether it is a letter key.
func ParseLetter(raw string) (Letter, bool) {
	l := Letter(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := l.Index(); !ok {
		return "", false
	}
	return l, true
}

type Question struct {
	Text        string   `yaml:"question_text" json:"question_text"`
	Options     []string `yaml:"options" json:"options"`
	CorrectKey  Letter   `yaml:"correct_option_key" json:"correct_option_key"`
	Explanation string   `yaml:"explanation" json:"explanation"`
}

// Validate checks the per-question invariants.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question_text cannot be empty", ErrInvalidQuestion)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuestion, OptionCount, len(q.Options))
	}
	if _, ok := q.CorrectKey.Index(); !ok {
		return fmt.Errorf("%w: correct_option_key %q is not one of a, b, c, d", ErrInvalidQuestion, q.CorrectKey)
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fmt.Errorf("%w: explanation cannot be empty", ErrInvalidQuestion)
	}
	return nil
}

// Bank is the fixed, ordered set of questions. A question's position is its public ID.
// A Bank is never modified after New returns, so it is safe to share between goroutines.
type Bank struct {
	questions []Question
}

// New validates every question and builds a Bank holding its own copy of them.
func New(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	owned := make([]Question, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		q.Options = append([]string(nil), q.Options...)
		owned[i] = q
	}
	return &Bank{questions: owned}, nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Question returns the question with the given ID.
// It fails with a *NotFoundError (matching ErrNotFound) when id is outside [0, Len()-1].
func (b *Bank) Question(id int) (Question, error) {
	if id < 0 || id >= len(b.questions) {
		return Question{}, &NotFoundError{ID: id, Total: len(b.questions)}
	}
	return b.questions[id], nil
}

// Questions returns the questions in bank order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// NotFoundError reports a question ID outside the bank's bounds.
type NotFoundError struct {
	ID    int
	Total int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Question with ID %d not found. Available IDs: 0-%d", e.ID, e.Total-1)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
