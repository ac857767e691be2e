package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/theairavi-del/splitt-app/constants"
)

var streetTypes = strings.Join(constants.StreetTypeTokens, "|")

var (
	// Quantity markers, tried in order: "qty: 3", "2x"/"2*", "@ 2",
	// then a bare leading count ("2 Chicken Wings").
	qtyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^qty[:.]?\s*(\d{1,4})\b\s*`),
		regexp.MustCompile(`(?i)^(\d{1,4})\s*[x×*]\s*`),
		regexp.MustCompile(`^@\s*(\d{1,4})\s+`),
		regexp.MustCompile(`^(\d{1,4})\s+`),
	}

	reHasLetter     = regexp.MustCompile(`[A-Za-z]`)
	reWhitespaceRun = regexp.MustCompile(`\s+`)

	reLeadingStreetNum  = regexp.MustCompile(`(?i)^\d{1,5}\s+(?:[a-z]+\s+)*(?:` + streetTypes + `)\.?\b`)
	reTrailingStreetNum = regexp.MustCompile(`(?i)\b(?:` + streetTypes + `)\.?\s+\d+\s*$`)
	reOrderLabel        = regexp.MustCompile(`(?i)^(?:order|ticket|table|receipt|check|invoice)\s*(?:#|no\.?|num(?:ber)?)?\s*:?\s*\d*$`)
)

var titleCaser = cases.Title(language.English)

// ExtractQuantity pulls a leading quantity marker off a raw item name,
// defaulting to 1. A leading "@" is stripped either way since it only
// marks a unit price.
func ExtractQuantity(name string) (int, string) {
	s := strings.TrimSpace(name)
	for _, re := range qtyPatterns {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		q, err := strconv.Atoi(m[1])
		if err != nil || q < 1 {
			q = 1
		}
		rest := strings.TrimSpace(s[len(m[0]):])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "@"))
		return q, rest
	}
	return 1, strings.TrimSpace(strings.TrimPrefix(s, "@"))
}

// CleanName collapses whitespace, trims filler left over from ledger
// layouts and title-cases the result.
func CleanName(name string) string {
	s := reWhitespaceRun.ReplaceAllString(name, " ")
	s = strings.Trim(s, " .-_–")
	return titleCaser.String(s)
}

// ValidateItemName reports whether a name is plausible for a line item:
// at least 2 characters, at least one letter, not a financial keyword,
// not an address fragment, not an order/ticket/table/receipt label.
func ValidateItemName(name string) bool {
	s := strings.TrimSpace(name)
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	if !reHasLetter.MatchString(s) {
		return false
	}
	if constants.IsNonItemKeyword(s) {
		return false
	}
	if reLeadingStreetNum.MatchString(s) || reTrailingStreetNum.MatchString(s) {
		return false
	}
	if reOrderLabel.MatchString(s) {
		return false
	}
	return true
}
