package cards

import "strings"

// FormatNumberInput renders whatever digits were typed in groups of four,
// e.g. "4111111111" -> "4111 1111 11".
func FormatNumberInput(s string) string {
	digits := NormalizeNumber(s)
	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// FormatExpiryInput keeps the first four typed digits and inserts a slash
// after the month once the year has started, e.g. "1229" -> "12/29".
func FormatExpiryInput(s string) string {
	digits := NormalizeNumber(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}
