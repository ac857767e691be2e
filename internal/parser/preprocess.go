package parser

import (
	"regexp"
	"strings"
)

// Boilerplate lines carry no item or summary information: store
// preambles, contact details, dividers, timestamps. They are filtered
// before classification but kept for metadata extraction, since the
// merchant name usually sits in the first lines.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(receipt|invoice|order|ticket|cashier|server|table|guest)\b`),
	regexp.MustCompile(`(?i)thank\s*you|have\s*a\s*(nice|great|good|wonderful)`),
	regexp.MustCompile(`(?i)www\.|https?://|\.(com|net|org)\b`),
	regexp.MustCompile(`(?i)^(tel|phone|fax)[:.\s]`),
	regexp.MustCompile(`^\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}$`),
	regexp.MustCompile(`^\S+@\S+\.\S+$`),
	regexp.MustCompile(`(?i)^date\b`),
	regexp.MustCompile(`^\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}$`),
	regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(:\d{2})?\s*([ap]m)?$`),
	regexp.MustCompile(`^[-=*_.]{3,}$`),
}

// SplitLines normalizes line endings, strips common OCR artifacts and
// returns the trimmed, non-empty lines in order.
func SplitLines(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var out []string
	for _, ln := range strings.Split(normalized, "\n") {
		ln = cleanLine(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

// FilterBoilerplate drops lines matching the skip-list. The input slice
// is not modified.
func FilterBoilerplate(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if isBoilerplate(ln) {
			continue
		}
		out = append(out, ln)
	}
	return out
}

func isBoilerplate(line string) bool {
	for _, re := range skipPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func cleanLine(ln string) string {
	// OCR tends to emit stray pipes and backslashes at cell borders.
	ln = strings.ReplaceAll(ln, "|", "")
	ln = strings.ReplaceAll(ln, `\`, "")
	return strings.TrimSpace(ln)
}
