package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/theairavi-del/splitt-app/constants"
	"github.com/theairavi-del/splitt-app/internal/entity"
)

var (
	// Proper-noun-like shape: capital start, then letters, digits,
	// ampersand, apostrophe, hyphen or space.
	reMerchantShape = regexp.MustCompile(`^[A-Z][A-Za-z0-9&'’\- ]*$`)

	reDateLabel     = regexp.MustCompile(`(?i)^date\b[:.\s]*`)
	reDateYMD       = regexp.MustCompile(`\b(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})\b`)
	reDateDMY       = regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})\b`)
	reDateMonthName = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

func (p *Parser) extractMetadata(lines []string) entity.Metadata {
	return entity.Metadata{
		Merchant: p.extractMerchant(lines),
		Date:     extractDate(lines),
	}
}

// extractMerchant scans the first few unfiltered lines for the first
// proper-noun-like line that is neither a date nor a price line.
func (p *Parser) extractMerchant(lines []string) string {
	limit := p.cfg.MerchantScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, ln := range lines[:limit] {
		if hasDateToken(ln) || reTrailingAmount.MatchString(ln) {
			continue
		}
		candidate := ln
		// tolerate a trailing period on a business suffix ("Acme Co.")
		if strings.HasSuffix(candidate, ".") {
			trimmed := strings.TrimSuffix(candidate, ".")
			fields := strings.Fields(trimmed)
			if len(fields) > 0 && isBusinessSuffix(fields[len(fields)-1]) {
				candidate = trimmed
			}
		}
		if reMerchantShape.MatchString(candidate) {
			return ln
		}
	}
	return ""
}

// extractDate returns the first date token across all lines, normalized
// to YYYY-MM-DD. Calendar parsing is tried first, then manual field
// reordering for the matched format, then the raw token unchanged.
func extractDate(lines []string) string {
	for _, ln := range lines {
		s := reDateLabel.ReplaceAllString(strings.TrimSpace(ln), "")
		if m := reDateMonthName.FindStringSubmatch(s); m != nil {
			return normalizeMonthNameDate(m[0], m[1], m[2], m[3])
		}
		if m := reDateYMD.FindStringSubmatch(s); m != nil {
			return normalizeNumericDate(m[0], m[1], m[2], m[3], true)
		}
		if m := reDateDMY.FindStringSubmatch(s); m != nil {
			return normalizeNumericDate(m[0], m[1], m[2], m[3], false)
		}
	}
	return ""
}

func hasDateToken(s string) bool {
	return reDateYMD.MatchString(s) || reDateDMY.MatchString(s) || reDateMonthName.MatchString(s)
}

func isBusinessSuffix(tok string) bool {
	tok = strings.ToLower(strings.TrimSuffix(tok, "."))
	for _, s := range constants.BusinessSuffixes {
		if tok == s {
			return true
		}
	}
	return false
}

func normalizeNumericDate(raw, a, b, c string, yearFirst bool) string {
	canon := strings.NewReplacer("-", "/", ".", "/").Replace(raw)
	var layouts []string
	if yearFirst {
		layouts = []string{"2006/1/2"}
	} else {
		// month-first is the common OCR case; day-first covers the rest
		layouts = []string{"1/2/2006", "2/1/2006", "1/2/06", "2/1/06"}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, canon); err == nil {
			return t.Format("2006-01-02")
		}
	}

	ai, _ := strconv.Atoi(a)
	bi, _ := strconv.Atoi(b)
	ci, _ := strconv.Atoi(c)
	var y, mo, d int
	if yearFirst {
		y, mo, d = ai, bi, ci
	} else {
		d, mo, y = ai, bi, ci
		if mo > 12 && d <= 12 {
			d, mo = mo, d
		}
	}
	if y < 100 {
		if y > 50 {
			y += 1900
		} else {
			y += 2000
		}
	}
	if t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC); mo >= 1 && mo <= 12 &&
		t.Year() == y && int(t.Month()) == mo && t.Day() == d {
		return t.Format("2006-01-02")
	}
	return raw
}

func normalizeMonthNameDate(raw, mon, day, year string) string {
	for _, layout := range []string{"Jan 2, 2006", "January 2, 2006", "Jan 2 2006", "January 2 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	mo, ok := monthsByPrefix[strings.ToLower(mon)]
	if !ok {
		return raw
	}
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	if t := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC); t.Month() == mo && t.Day() == d {
		return t.Format("2006-01-02")
	}
	return raw
}
