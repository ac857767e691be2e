package parser

import (
	"strconv"
	"strings"
)

// NormalizePrice converts a raw numeric token (possibly carrying a
// currency symbol and `.`/`,` separators) into a non-negative amount.
// It never fails: any unparseable input yields 0.
//
// Separator disambiguation works on the separator-delimited parts:
//   - more than two parts: the last separator is the decimal point and
//     all earlier ones are thousands groupings ("1.234,56" -> 1234.56);
//   - exactly two parts: a 2-digit tail is cents ("24,00" -> 24.00), a
//     1-digit tail is a truncated decimal ("12.5" -> 12.50), and a
//     longer tail is a thousands grouping ("12.345" -> 12345).
func NormalizePrice(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0
	}

	// Split keeps empty parts, so ".50" still lands in the two-part
	// cents branch.
	parts := strings.Split(strings.ReplaceAll(cleaned, ",", "."), ".")

	var joined string
	switch len(parts) {
	case 1:
		joined = parts[0]
	case 2:
		head, tail := parts[0], parts[1]
		switch len(tail) {
		case 2:
			joined = head + "." + tail
		case 1:
			joined = head + "." + tail + "0"
		default:
			joined = head + tail
		}
	default:
		tail := parts[len(parts)-1]
		joined = strings.Join(parts[:len(parts)-1], "") + "." + tail
	}

	f, err := strconv.ParseFloat(joined, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
