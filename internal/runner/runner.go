// Package runner drives an interactive quiz over a line-based reader and writer.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/remaimber-it/quiz/internal/domain/questionbank"
	"github.com/remaimber-it/quiz/internal/domain/round"
)

const prompt = "Your choice (a/b/c/d, 's' skip, 'q' quit): "

var (
	colorQuestion  = lipgloss.Color("33")
	colorCorrect   = lipgloss.Color("42")
	colorIncorrect = lipgloss.Color("220")
	colorMuted     = lipgloss.Color("244")
)

// Options configures a quiz run.
type Options struct {
	NoColor bool
	Logger  *slog.Logger
	// Deck deals question IDs. When nil a clock-seeded deck over the bank is used.
	Deck *round.Deck
}

// Result is the tally at the end of a run.
type Result struct {
	SessionID string
	Answered  int
	Correct   int
	// Passes is the number of shuffled passes started over the bank.
	Passes int
}

// choice is one accepted line of input.
type choice int

const (
	choiceQuit choice = iota
	choiceSkip
	choiceAnswer
)

type session struct {
	bank    *questionbank.Bank
	deck    *round.Deck
	in      *bufio.Scanner
	out     io.Writer
	noColor bool
	logger  *slog.Logger

	score    int
	answered int
}

// Run plays the quiz until the player quits or input ends. It only returns an
// error when reading input fails or the context is cancelled.
func Run(ctx context.Context, bank *questionbank.Bank, in io.Reader, out io.Writer, opts Options) (Result, error) {
	deck := opts.Deck
	if deck == nil {
		deck = round.New(bank.Len())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := uuid.NewString()
	s := &session{
		bank:    bank,
		deck:    deck,
		in:      bufio.NewScanner(in),
		out:     out,
		noColor: opts.NoColor,
		logger:  logger.With("session_id", id),
	}

	s.logger.Debug("quiz session started", "questions", bank.Len())
	err := s.loop(ctx)
	s.logger.Debug("quiz session ended", "answered", s.answered, "correct", s.score, "passes", deck.Pass())

	return Result{
		SessionID: id,
		Answered:  s.answered,
		Correct:   s.score,
		Passes:    deck.Pass(),
	}, err
}

func (s *session) loop(ctx context.Context) error {
	s.greet()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		id := s.deck.Next()
		q, err := s.bank.Question(id)
		if err != nil {
			return fmt.Errorf("deal question %d: %w", id, err)
		}

		s.printQuestion(q)

		kind, letter, err := s.ask()
		if err != nil {
			return err
		}

		switch kind {
		case choiceQuit:
			fmt.Fprintf(s.out, "\nExiting quiz. You answered %d question(s) with %d correct.\n", s.answered, s.score)
			return nil
		case choiceSkip:
			fmt.Fprintln(s.out, stylize("Skipped.", s.noColor, colorMuted))
			fmt.Fprintln(s.out)
			continue
		}

		if err := s.answer(q, letter); err != nil {
			return err
		}
	}
}

func (s *session) greet() {
	fmt.Fprintln(s.out, "Welcome to the Python Quiz Chatbot!")
	fmt.Fprintln(s.out, "Answer by typing a, b, c, or d. Type 'q' at any time to quit.")
	fmt.Fprintln(s.out, "Type 's' to skip a question. Good luck!")
	fmt.Fprintln(s.out)
}

func (s *session) printQuestion(q questionbank.Question) {
	fmt.Fprintln(s.out, stylize(q.Text, s.noColor, colorQuestion))
	for i, option := range q.Options {
		fmt.Fprintf(s.out, "  %s) %s\n", questionbank.Letters[i], option)
	}
}

// ask prompts until it reads a valid choice. End of input counts as quitting.
func (s *session) ask() (choice, questionbank.Letter, error) {
	for {
		fmt.Fprint(s.out, prompt)

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return choiceQuit, "", fmt.Errorf("read choice: %w", err)
			}
			return choiceQuit, "", nil
		}

		raw := strings.ToLower(strings.TrimSpace(s.in.Text()))
		switch raw {
		case "q":
			return choiceQuit, "", nil
		case "s":
			return choiceSkip, "", nil
		}
		if letter, ok := questionbank.ParseLetter(raw); ok {
			return choiceAnswer, letter, nil
		}

		fmt.Fprintln(s.out, "Please enter a valid choice: a, b, c, d, 's' to skip, or 'q' to quit.")
	}
}

func (s *session) answer(q questionbank.Question, letter questionbank.Letter) error {
	verdict, err := questionbank.Resolve(q, string(letter))
	if err != nil {
		return err
	}

	s.answered++
	if verdict.IsCorrect {
		s.score++
		fmt.Fprintln(s.out, stylize("Correct! 🎉", s.noColor, colorCorrect))
	} else {
		msg := fmt.Sprintf("Incorrect. The correct answer is '%s) %s'.", verdict.CorrectLetter, verdict.CorrectText)
		fmt.Fprintln(s.out, stylize(msg, s.noColor, colorIncorrect))
	}
	fmt.Fprintf(s.out, "Explanation: %s\n", verdict.Explanation)
	fmt.Fprintf(s.out, "Score: %d/%d\n\n", s.score, s.answered)
	return nil
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
