package questionbank

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOutOfRange = errors.New("correct option key out of range")

// Verdict is the outcome of checking a choice against a question's answer key.
type Verdict struct {
	IsCorrect     bool
	CorrectLetter Letter
	CorrectText   string
	Explanation   string
}

// Resolve compares choice against the question's correct key, ignoring case.
func Resolve(q Question, choice string) (Verdict, error) {
	idx, ok := q.CorrectKey.Index()
	if !ok || idx >= len(q.Options) {
		return Verdict{}, fmt.Errorf("%w: %q", ErrOutOfRange, q.CorrectKey)
	}

	return Verdict{
		IsCorrect:     strings.EqualFold(strings.TrimSpace(choice), string(q.CorrectKey)),
		CorrectLetter: q.CorrectKey,
		CorrectText:   q.Options[idx],
		Explanation:   q.Explanation,
	}, nil
}
