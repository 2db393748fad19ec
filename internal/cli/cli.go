// Package cli implements the quiz command line.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Streams are the standard streams a command talks to.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, streams Streams) int
}

// Run dispatches args to a command. With no command, or when the first argument is a
// flag, the quiz is played.
func Run(args []string, streams Streams) int {
	if len(args) > 0 && isHelpArg(args[0]) {
		printUsage(streams.Stdout)
		return ExitOK
	}

	name := defaultCommand
	if len(args) > 0 && !isFlag(args[0]) {
		name, args = args[0], args[1:]
	}

	cmd := findCommand(name)
	if cmd == nil {
		fmt.Fprintf(streams.Stderr, "Unknown command: %s\n\n", name)
		printUsage(streams.Stderr)
		return ExitUsage
	}

	return cmd.Run(args, streams)
}

const defaultCommand = "play"

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quiz [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintf(w, "\nWithout a command, %q is run.\n", defaultCommand)
	fmt.Fprintln(w, "Use \"quiz <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, streams Streams) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("play", "Play the quiz in the terminal", []string{
		"quiz play [--bank <path>] [--seed <n>] [--no-color]",
	}, runPlay),
	command("seed-db", "Write a question bank into a SQLite file", []string{
		"quiz seed-db [--bank <path>] <db-path>",
	}, runSeedDB),
	command("validate", "Check a question bank file", []string{
		"quiz validate <path>",
	}, runValidate),
}
