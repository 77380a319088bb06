package tools

import "strings"

// SanitizePhone strips everything but digits and rewrites a leading 0 to the
// 92 country prefix, matching what the lookup providers expect.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		digits = "92" + digits[1:]
	}
	return digits
}
