package cards

import (
	"strconv"
	"strings"
)

// minNumberLen is the shortest card number accepted by LuhnValid.
const minNumberLen = 13

// NormalizeNumber drops every non-digit rune, so "4111 1111-1111 1111"
// becomes "4111111111111111".
func NormalizeNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// LuhnValid reports whether digits is at least 13 digits long and carries a
// valid Luhn (mod 10) checksum. Input must already be normalized.
func LuhnValid(digits string) bool {
	if len(digits) < minNumberLen {
		return false
	}
	sum, dbl := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}

// DetectBrand infers the card network from the leading digits of a
// normalized number. Rules are checked in order and the first match wins.
func DetectBrand(digits string) Brand {
	switch {
	case strings.HasPrefix(digits, "4"):
		return BrandVisa
	case prefixIn(digits, 2, 51, 55), prefixIn(digits, 4, 2221, 2720):
		return BrandMastercard
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return BrandAmex
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"), prefixIn(digits, 3, 644, 649):
		return BrandDiscover
	default:
		return BrandOther
	}
}

// prefixIn reports whether the first n digits, read as a number, fall in [lo, hi].
func prefixIn(digits string, n, lo, hi int) bool {
	if len(digits) < n {
		return false
	}
	v, err := strconv.Atoi(digits[:n])
	if err != nil {
		return false
	}
	return v >= lo && v <= hi
}

// lastN returns the trailing n characters of s, or s itself when shorter.
func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
