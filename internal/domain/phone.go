package domain

import "strings"

// FormatPhoneNumber renders a US phone number as DDD-DDD-DDDD.
// A leading country code 1 is stripped from 11-digit numbers. Anything
// that is not 10 digits (after stripping) is returned unchanged, so the
// function is total: it never fails, and an empty input stays empty.
func FormatPhoneNumber(input string) string {
	digits := stripNonDigits(input)

	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return input
	}

	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
}

// FormatPhoneInput formats a partially typed phone number for live input:
// non-digits are stripped, input is capped at 10 digits, and separators
// appear after the 3rd and 6th digit as the number grows.
func FormatPhoneInput(value string) string {
	digits := stripNonDigits(value)
	if len(digits) > 10 {
		digits = digits[:10]
	}

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
