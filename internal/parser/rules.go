package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/theairavi-del/splitt-app/constants"
	"github.com/theairavi-del/splitt-app/internal/entity"
)

// rule is one ordered matcher. Rules are evaluated in fixed priority
// order and the first match wins; ties between rules are resolved by
// that order, never by comparing confidences.
type rule interface {
	tryMatch(line string) (entity.ClassifiedLine, bool)
}

var (
	reTrailingAmount = regexp.MustCompile(`[$€£¥]?\s*(\d[\d.,]*)\s*$`)

	reTaxLabel      = regexp.MustCompile(`(?i)\b(tax|vat|gst|hst)\b`)
	reTipLabel      = regexp.MustCompile(`(?i)\b(tip|gratuity|service\s*charge)\b`)
	reTotalLabel    = regexp.MustCompile(`(?i)\b(grand\s*total|total|amount\s*due|balance\s*due)\b`)
	reSubtotalLabel = regexp.MustCompile(`(?i)\b(sub\s*-?\s*total|before\s*tax|net|pre\s*-?\s*tax)\b`)

	// Ledger layout: name, a run of filler, then the price. The
	// trailing F/N/T is a register tax flag.
	reDottedItem = regexp.MustCompile(`^(.+?)[.\-_ ]{3,}[$€£¥]?\s*(\d[\d.,]*)\s*[FNT]?\s*$`)

	// Standard layout: optional "2x" count, name, currency-prefixed price.
	reStandardItem = regexp.MustCompile(`^(?:(\d{1,4})\s*[x×*]\s*)?(.+?)\s+[$€£¥]\s*(\d[\d.,]*)\s*[FNT]?\s*$`)

	// Fallback: any line ending in a number.
	reFallbackItem = regexp.MustCompile(`^(.+?)\s+[$€£¥]?\s*(\d[\d.,]*)\s*$`)

	reFillerRun    = regexp.MustCompile(`[.\-]{3,}`)
	reStreetPrefix = regexp.MustCompile(`(?i)^(` + streetTypes + `)\b`)
)

func buildRules() []rule {
	// Subtotal runs first: its multi-word synonyms ("Before Tax",
	// "Sub Total") contain the bare tax/total keywords and would be
	// swallowed by those rules otherwise.
	return []rule{
		summaryRule{kind: entity.LineSubtotal, label: reSubtotalLabel},
		summaryRule{kind: entity.LineTax, label: reTaxLabel},
		summaryRule{kind: entity.LineTip, label: reTipLabel},
		summaryRule{kind: entity.LineTotal, label: reTotalLabel},
		dottedItemRule{},
		standardItemRule{},
		fallbackItemRule{},
	}
}

// summaryRule matches a label keyword (optionally followed by a
// percentage annotation) with a numeric token anchored at line end.
type summaryRule struct {
	kind  entity.LineKind
	label *regexp.Regexp
}

func (r summaryRule) tryMatch(line string) (entity.ClassifiedLine, bool) {
	if !r.label.MatchString(line) {
		return entity.ClassifiedLine{}, false
	}
	m := reTrailingAmount.FindStringSubmatch(line)
	if m == nil {
		return entity.ClassifiedLine{}, false
	}
	return entity.ClassifiedLine{Kind: r.kind, Amount: NormalizePrice(m[1])}, true
}

type dottedItemRule struct{}

func (dottedItemRule) tryMatch(line string) (entity.ClassifiedLine, bool) {
	m := reDottedItem.FindStringSubmatch(line)
	if m == nil {
		return entity.ClassifiedLine{}, false
	}
	item, ok := buildItem(m[1], m[2], 0, constants.ConfidenceItemDotted)
	if !ok {
		return entity.ClassifiedLine{}, false
	}
	return entity.ClassifiedLine{Kind: entity.LineItem, Item: item}, true
}

type standardItemRule struct{}

func (standardItemRule) tryMatch(line string) (entity.ClassifiedLine, bool) {
	m := reStandardItem.FindStringSubmatch(line)
	if m == nil {
		return entity.ClassifiedLine{}, false
	}
	conf := constants.ConfidenceItemStandard
	explicitQty := 0
	if m[1] != "" {
		if q, err := strconv.Atoi(m[1]); err == nil && q >= 1 {
			explicitQty = q
		}
		conf = constants.ConfidenceItemExplicitQty
	} else if reFillerRun.MatchString(line) {
		// ambiguous with the dotted-ledger layout, which has priority
		conf = constants.ConfidenceItemDottedHint
	}
	item, ok := buildItem(m[2], m[3], explicitQty, conf)
	if !ok {
		return entity.ClassifiedLine{}, false
	}
	return entity.ClassifiedLine{Kind: entity.LineItem, Item: item}, true
}

type fallbackItemRule struct{}

func (fallbackItemRule) tryMatch(line string) (entity.ClassifiedLine, bool) {
	m := reFallbackItem.FindStringSubmatch(line)
	if m == nil {
		return entity.ClassifiedLine{}, false
	}
	value := NormalizePrice(m[2])
	if value <= 0 {
		return entity.ClassifiedLine{}, false
	}
	// A mid-range trailing number after a street-type token is almost
	// certainly an address, not a priced item.
	if value >= constants.AddressGuardMin && value <= constants.AddressGuardMax &&
		reStreetPrefix.MatchString(strings.TrimSpace(m[1])) {
		return entity.ClassifiedLine{}, false
	}
	item, ok := buildItem(m[1], m[2], 0, constants.ConfidenceItemFallback)
	if !ok {
		return entity.ClassifiedLine{}, false
	}
	return entity.ClassifiedLine{Kind: entity.LineItem, Item: item}, true
}

// buildItem turns a raw name/price capture into an Item. The raw name
// is validated before quantity stripping so address fragments such as
// "123 Main St" are not mistaken for a counted item, and the cleaned
// name is validated again afterwards.
func buildItem(rawName, rawPrice string, explicitQty int, conf float64) (*entity.Item, bool) {
	if !ValidateItemName(rawName) {
		return nil, false
	}
	qty, stripped := ExtractQuantity(rawName)
	if explicitQty > 0 {
		qty = explicitQty
	}
	name := CleanName(stripped)
	if !ValidateItemName(name) {
		return nil, false
	}
	return &entity.Item{
		Name:       name,
		Price:      NormalizePrice(rawPrice),
		Quantity:   qty,
		Confidence: conf,
	}, true
}
