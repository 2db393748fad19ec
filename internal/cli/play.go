package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/remaimber-it/quiz/internal/domain/round"
	"github.com/remaimber-it/quiz/internal/infrastructure/config"
	"github.com/remaimber-it/quiz/internal/runner"
	"github.com/remaimber-it/quiz/internal/store"
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Stdout)
			return ExitOK
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(streams.Stderr, "%v\n", err)
			return ExitError
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(streams.Stderr)
		bankSource := flags.String("bank", cfg.BankSource, "Question bank file (.yaml, .json or SQLite); default is the built-in bank")
		seed := flags.Int64("seed", 0, "Shuffle seed for reproducible question order (default: clock)")
		noColor := flags.Bool("no-color", cfg.NoColor, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, streams); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(streams.Stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, streams.Stderr)
			return ExitUsage
		}

		logger := slog.New(slog.NewTextHandler(streams.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
		ctx := context.Background()

		bank, err := store.LoadBank(ctx, *bankSource)
		if err != nil {
			fmt.Fprintf(streams.Stderr, "Failed to load question bank: %v\n", err)
			return ExitError
		}

		deckConfig := round.DefaultConfig()
		if flagSet(flags, "seed") {
			deckConfig.Seed = seed
		}

		res, err := runner.Run(ctx, bank, streams.Stdin, streams.Stdout, runner.Options{
			NoColor: *noColor || !isTerminal(streams.Stdout),
			Logger:  logger,
			Deck:    round.NewWithConfig(bank.Len(), deckConfig),
		})
		if err != nil {
			logger.Error("quiz aborted", "session_id", res.SessionID, "error", err)
			return ExitError
		}
		return ExitOK
	}
}

// parseFlags parses args into flags. It returns false with the exit code when the
// command should stop.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, streams Streams) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, streams.Stdout)
			return ExitOK, false
		}
		fmt.Fprintf(streams.Stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, streams.Stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func flagSet(flags *flag.FlagSet, name string) bool {
	found := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
