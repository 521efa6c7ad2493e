package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cardkeeper/internal/cards"
	"github.com/dmitrijs2005/cardkeeper/internal/logging"
)

// cardService is the part of *cards.Provider the REPL uses.
type cardService interface {
	List() []cards.Card
	Add(ctx context.Context, payload cards.AddCardPayload) (*cards.Card, error)
	Delete(ctx context.Context, id string)
}

type App struct {
	cards  cardService
	reader *bufio.Reader
	out    io.Writer
	logger logging.Logger
}

func NewApp(svc cardService, in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{cards: svc, reader: bufio.NewReader(in), out: out, logger: logger}
}

// Run blocks in the REPL until the user exits, input ends, or ctx is done.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to cardkeeper (type 'help' for commands)")
	return runREPL(ctx, a, a.getStatus, a.out)
}

func (a *App) getStatus() string {
	n := len(a.cards.List())
	if n == 1 {
		return "(1 card)"
	}
	return fmt.Sprintf("(%d cards)", n)
}

func (a *App) readCommand(ctx context.Context, prompt string) (string, error) {
	return a.prompt(ctx, prompt)
}

func (a *App) prompt(ctx context.Context, prompt string) (string, error) {
	return ask(ctx, func() (string, error) { return GetSimpleText(a.reader, prompt, a.out) })
}

func (a *App) secret(ctx context.Context, prompt string) (string, error) {
	return ask(ctx, func() (string, error) { return GetSecret(a.reader, prompt, a.out) })
}
