package cards

import (
	"fmt"
	"strings"
	"time"
)

// Draft is a validated card that has not yet been given an id or timestamp.
type Draft struct {
	Brand    Brand
	Last4    string
	Expiry   Expiry
	Holder   string
	Nickname string
	Type     Type
}

// Validate runs the intake checks on p in order: number (length and Luhn),
// expiry format, expiry not in the past at now, card type. Brand detection
// never fails. The CVV is not inspected.
func Validate(p AddCardPayload, now time.Time, loc *time.Location) (Draft, error) {
	digits := NormalizeNumber(p.Number)
	if !LuhnValid(digits) {
		return Draft{}, fmt.Errorf("%w: %d digits, checksum or length failed", ErrInvalidNumber, len(digits))
	}

	exp, err := ParseExpiry(p.Expiry)
	if err != nil {
		return Draft{}, err
	}
	if exp.ExpiredAt(now, loc) {
		return Draft{}, fmt.Errorf("%w: valid through %s", ErrExpired, exp)
	}

	if !p.Type.Valid() {
		return Draft{}, fmt.Errorf("%w: %q", ErrInvalidType, p.Type)
	}

	return Draft{
		Brand:    DetectBrand(digits),
		Last4:    lastN(digits, 4),
		Expiry:   exp,
		Holder:   strings.TrimSpace(p.Holder),
		Nickname: strings.TrimSpace(p.Nickname),
		Type:     p.Type,
	}, nil
}
