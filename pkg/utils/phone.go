package utils

import (
	"strings"
)

// NormalizePhone keeps digits only and returns them in the canonical "+<digits>"
// form, so "+7 (999) 123-45-67" and "79991234567" share one key. Input without
// digits yields "".
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 1)
	b.WriteByte('+')

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 1 {
		return ""
	}
	return b.String()
}

// MaskPhone hides all but the last four digits for log output.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
