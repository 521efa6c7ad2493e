// Package cards implements the local card vault: intake validation of
// user-entered payment cards and a provider that owns the redacted,
// newest-first card list and mirrors it to a key-value store.
//
// Only the last four digits of a card number survive validation. The full
// number and the CVV are never part of a Card.
package cards

import (
	"fmt"
	"time"
)

// Brand is the card network inferred from the leading digits.
type Brand string

const (
	BrandVisa       Brand = "Visa"
	BrandMastercard Brand = "Mastercard"
	BrandAmex       Brand = "Amex"
	BrandDiscover   Brand = "Discover"
	BrandOther      Brand = "Other"
)

// Type is the user-selected card kind.
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

// Valid reports whether t is one of the known card types.
func (t Type) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

// Card is the persisted, redacted record of a saved payment card.
type Card struct {
	ID       string    `json:"id"`
	Brand    Brand     `json:"brand"`
	Last4    string    `json:"last4"`
	ExpMonth int       `json:"expMonth"`
	ExpYear  int       `json:"expYear"`
	Holder   string    `json:"holder"`
	Nickname string    `json:"nickname,omitempty"`
	Type     Type      `json:"type"`
	AddedAt  time.Time `json:"addedAt"`
}

// AddCardPayload is the raw input of the Add Card form.
//
// Number and CVV are read during validation and then dropped.
type AddCardPayload struct {
	Holder   string
	Number   string
	Expiry   string
	CVV      string
	Nickname string
	Type     Type
}

// Masked renders the card number the way the card list shows it.
func (c Card) Masked() string {
	return "•••• •••• •••• " + c.Last4
}

// ExpiryLabel renders the expiry as MM/YY.
func (c Card) ExpiryLabel() string {
	return fmt.Sprintf("%02d/%02d", c.ExpMonth, c.ExpYear%100)
}

// Label is the brand followed by the card type, e.g. "Visa Credit".
func (c Card) Label() string {
	kind := "Credit"
	if c.Type == TypeDebit {
		kind = "Debit"
	}
	return string(c.Brand) + " " + kind
}

func (c Card) String() string {
	s := fmt.Sprintf("%s  %s  %s  EXP %s  %s", c.ID, c.Label(), c.Masked(), c.ExpiryLabel(), c.Holder)
	if c.Nickname != "" {
		s += "  (" + c.Nickname + ")"
	}
	return s
}
