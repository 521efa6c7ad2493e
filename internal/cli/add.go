package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cardkeeper/internal/cards"
)

// Add walks the user through the Add Card form and hands the result to the
// provider. A rejected card is reported, not returned as an error.
func (a *App) Add(ctx context.Context) error {
	payload, err := a.addCardDetails(ctx)
	if err != nil {
		return err
	}

	card, err := a.cards.Add(ctx, payload)
	if err != nil {
		fmt.Fprintln(a.out, "Please check your card details.")
		fmt.Fprintln(a.out, " -", describeRejection(err))
		return nil
	}

	fmt.Fprintln(a.out, "Card added:")
	fmt.Fprintln(a.out, card)
	return nil
}

func (a *App) addCardDetails(ctx context.Context) (cards.AddCardPayload, error) {
	var p cards.AddCardPayload
	var err error

	if p.Holder, err = a.prompt(ctx, "Cardholder name"); err != nil {
		return p, err
	}

	number, err := a.prompt(ctx, "Card number")
	if err != nil {
		return p, err
	}
	p.Number = cards.FormatNumberInput(number)

	expiry, err := a.prompt(ctx, "Expiry (MM/YY)")
	if err != nil {
		return p, err
	}
	if !strings.Contains(expiry, "/") {
		expiry = cards.FormatExpiryInput(expiry)
	}
	p.Expiry = expiry

	// Read to mirror the form; the provider discards it.
	if p.CVV, err = a.secret(ctx, "CVV (not stored)"); err != nil {
		return p, err
	}

	if p.Nickname, err = a.prompt(ctx, "Nickname (optional)"); err != nil {
		return p, err
	}

	kind, err := a.prompt(ctx, "Card type [credit/debit] (default credit)")
	if err != nil {
		return p, err
	}
	p.Type = parseType(kind)

	return p, nil
}

func parseType(s string) cards.Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c", "credit":
		return cards.TypeCredit
	case "d", "debit":
		return cards.TypeDebit
	default:
		return cards.Type(s)
	}
}

func describeRejection(err error) string {
	switch cards.Reason(err) {
	case "invalid_number":
		return "the card number is not valid"
	case "invalid_expiry":
		return "the expiry date must look like MM/YY"
	case "expired":
		return "the card has expired"
	case "invalid_type":
		return "the card type must be credit or debit"
	default:
		return err.Error()
	}
}
