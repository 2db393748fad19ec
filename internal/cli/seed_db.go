package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/remaimber-it/quiz/internal/store"
)

// runSeedDB builds the handler for the seed-db command.
func runSeedDB(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(streams.Stderr)
		bankSource := flags.String("bank", "", "Question bank to copy (default: the built-in bank)")
		if code, ok := parseFlags(cmd, flags, args, streams); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintf(streams.Stderr, "expected exactly one database path, got %d argument(s)\n", flags.NArg())
			printCommandUsage(cmd, streams.Stderr)
			return ExitUsage
		}

		dbPath := flags.Arg(0)
		if !store.IsSQLitePath(dbPath) {
			fmt.Fprintf(streams.Stderr, "database path %q must end in .db, .sqlite or .sqlite3\n", dbPath)
			return ExitUsage
		}
		if *bankSource == dbPath {
			fmt.Fprintln(streams.Stderr, "source and destination must differ")
			return ExitUsage
		}

		ctx := context.Background()
		bank, err := store.LoadBank(ctx, *bankSource)
		if err != nil {
			fmt.Fprintf(streams.Stderr, "Failed to load question bank: %v\n", err)
			return ExitError
		}

		db, err := store.NewSQLite(dbPath)
		if err != nil {
			fmt.Fprintf(streams.Stderr, "Failed to open %s: %v\n", dbPath, err)
			return ExitError
		}
		defer db.Close()

		if err := db.SaveQuestions(ctx, bank.Questions()); err != nil {
			fmt.Fprintf(streams.Stderr, "Failed to write %s: %v\n", dbPath, err)
			return ExitError
		}

		fmt.Fprintf(streams.Stdout, "Wrote %d questions to %s\n", bank.Len(), dbPath)
		return ExitOK
	}
}
