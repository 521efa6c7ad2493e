package cards

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var expiryPattern = regexp.MustCompile(`^\s*(\d{1,2})\s*/\s*(\d{2,4})\s*$`)

// Expiry is a card's printed month and four-digit year.
type Expiry struct {
	Month int
	Year  int
}

// ParseExpiry accepts "MM/YY" or "MM/YYYY", with optional spaces around the
// slash. Two-digit years are taken to be in the 2000s.
func ParseExpiry(s string) (Expiry, error) {
	m := expiryPattern.FindStringSubmatch(s)
	if m == nil {
		return Expiry{}, fmt.Errorf("%w: %q is not MM/YY or MM/YYYY", ErrInvalidExpiry, s)
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return Expiry{}, fmt.Errorf("%w: month must be 01..12 (got %d)", ErrInvalidExpiry, month)
	}
	if len(m[2]) < 3 {
		year += 2000
	}
	return Expiry{Month: month, Year: year}, nil
}

// End returns the first instant after the card's valid period: midnight on
// the first day of the following month in loc. A nil loc means time.Local.
func (e Expiry) End(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(e.Year, time.Month(e.Month), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
}

// ExpiredAt reports whether the card is no longer valid at now, i.e. End is
// at or before now.
func (e Expiry) ExpiredAt(now time.Time, loc *time.Location) bool {
	return !e.End(loc).After(now)
}

func (e Expiry) String() string {
	return fmt.Sprintf("%02d/%04d", e.Month, e.Year)
}
