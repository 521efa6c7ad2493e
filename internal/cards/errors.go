package cards

import "errors"

// Rejection errors returned by Validate and Provider.Add. Callers match them
// with errors.Is; the returned card is always nil when one of these is set.
var (
	ErrInvalidNumber = errors.New("invalid card number")
	ErrInvalidExpiry = errors.New("invalid expiry")
	ErrExpired       = errors.New("card expired")
	ErrInvalidType   = errors.New("invalid card type")
)

// Reason returns a short code for a rejection error, or "" when err is not
// a rejection.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(err, ErrInvalidExpiry):
		return "invalid_expiry"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrInvalidType):
		return "invalid_type"
	default:
		return ""
	}
}
