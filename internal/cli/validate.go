package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/remaimber-it/quiz/internal/store"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(streams.Stderr)
		if code, ok := parseFlags(cmd, flags, args, streams); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintf(streams.Stderr, "expected exactly one bank path, got %d argument(s)\n", flags.NArg())
			printCommandUsage(cmd, streams.Stderr)
			return ExitUsage
		}

		bank, err := store.LoadBank(context.Background(), flags.Arg(0))
		if err != nil {
			fmt.Fprintf(streams.Stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(streams.Stdout, "Bank OK: %d questions\n", bank.Len())
		return ExitOK
	}
}
