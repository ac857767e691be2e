package constants

import "strings"

// NonItemKeywords is the denylist of financial/logistics labels that can
// never be an item name on their own. Matched whole-string,
// case-insensitively, after trimming.
var NonItemKeywords = []string{
	"total",
	"subtotal",
	"tax",
	"tip",
	"change",
	"cash",
	"credit",
	"debit",
	"card",
	"payment",
	"balance",
	"amount",
	"due",
	"check",
	"bill",
	"date",
}

// StreetTypeTokens mark address fragments ("123 Main St", "Elm Ave 42").
var StreetTypeTokens = []string{
	"street", "st",
	"avenue", "ave",
	"boulevard", "blvd",
	"road", "rd",
	"drive", "dr",
	"lane", "ln",
	"way",
	"court", "ct",
}

// BusinessSuffixes commonly terminate a merchant line.
var BusinessSuffixes = []string{
	"inc", "llc", "ltd", "co", "corp", "company",
	"restaurant", "cafe", "diner", "grill", "bar", "bakery", "deli",
	"pizzeria", "bistro", "market", "store", "shop",
}

// IsNonItemKeyword reports whether s is exactly a denylisted label.
func IsNonItemKeyword(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, kw := range NonItemKeywords {
		if s == kw {
			return true
		}
	}
	return false
}
