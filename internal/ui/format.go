package ui

import (
	"strconv"
	"strings"

	"storefront/internal/models"
)

// FormatPrice renders an amount in minor units the way the storefront shows
// prices: French digit grouping followed by the FCFA label.
func FormatPrice(cents int) string {
	return groupDigits(cents) + " FCFA"
}

func groupDigits(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatSupplements renders a cart line's configuration as a single summary
// line, or "" when nothing was chosen.
func FormatSupplements(s models.CartItemSupplements) string {
	var parts []string
	if s.Pain != "" {
		parts = append(parts, "Pain: "+s.Pain)
	}
	if s.Frites != "" {
		parts = append(parts, "Frites: "+s.Frites)
	}
	if len(s.Sauces) > 0 {
		parts = append(parts, "Sauces: "+strings.Join(s.Sauces, ", "))
	}
	return strings.Join(parts, " • ")
}
