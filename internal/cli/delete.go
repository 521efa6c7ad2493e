package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/cardkeeper/internal/cards"
)

// Delete removes the card named by args[0], prompting for the id when none
// was given.
func (a *App) Delete(ctx context.Context, args []string) error {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		if id, err = a.prompt(ctx, "Enter card id to delete"); err != nil {
			return err
		}
	}
	if id == "" {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}

	known := slices.ContainsFunc(a.cards.List(), func(c cards.Card) bool { return c.ID == id })
	a.cards.Delete(ctx, id)

	if known {
		fmt.Fprintln(a.out, "Card removed.")
	} else {
		fmt.Fprintf(a.out, "No card with id %s.\n", id)
	}
	return nil
}
