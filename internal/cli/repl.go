package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a stub.
type execIface interface {
	readCommand(ctx context.Context, prompt string) (string, error)
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
}

const helpText = "Available commands: (l)ist, add, delete [id], help, exit"

// runREPL reads commands until EOF, exit/quit, or ctx is done. Handler
// errors are printed and the loop goes on, except for end of input and
// context cancellation, which end it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, w io.Writer) error {
	for {
		line, err := a.readCommand(ctx, fmt.Sprintf("cardkeeper %s", statusFn()))
		if err != nil {
			return endOfSession(err)
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)
		case "l", "list":
			err = a.List(ctx)
		case "add":
			err = a.Add(ctx)
		case "delete", "rm":
			err = a.Delete(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return nil
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return endOfSession(err)
			}
			fmt.Fprintln(w, "error:", err)
		}
	}
}

func endOfSession(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
