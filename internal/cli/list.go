package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	list := a.cards.List()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No cards saved yet. Use 'add' to save one.")
		return nil
	}
	for _, c := range list {
		fmt.Fprintln(a.out, c)
	}
	return nil
}
