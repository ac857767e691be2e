package entity

// LineKind tags the outcome of classifying a single receipt line.
type LineKind string

const (
	LineUnknown  LineKind = "UNKNOWN"
	LineItem     LineKind = "ITEM"
	LineTax      LineKind = "TAX"
	LineTip      LineKind = "TIP"
	LineTotal    LineKind = "TOTAL"
	LineSubtotal LineKind = "SUBTOTAL"
)

// ClassifiedLine is the tagged result of matching one line against the
// rule set. Summary kinds carry Amount; LineItem carries Item. It is
// never mutated after creation.
type ClassifiedLine struct {
	Kind   LineKind `json:"kind"`
	Amount float64  `json:"amount,omitempty"`
	Item   *Item    `json:"item,omitempty"`
}

// IsSummary reports whether the line contributes to the receipt-level
// summary fold.
func (c ClassifiedLine) IsSummary() bool {
	switch c.Kind {
	case LineTax, LineTip, LineTotal, LineSubtotal:
		return true
	}
	return false
}
