package parser

import "github.com/theairavi-del/splitt-app/internal/entity"

// AggregateSummary folds the classified lines into one summary record.
// Receipts often repeat summary labels; the last occurrence of each
// kind wins since the final one is usually the most complete. When the
// receipt declares a total and tax but no subtotal, the subtotal is
// derived as total - tax - tip. The derived value may come out negative
// on inconsistent input; that is surfaced through the confidence score,
// not rejected here.
func AggregateSummary(lines []entity.ClassifiedLine) entity.Summary {
	var s entity.Summary
	for _, cl := range lines {
		switch cl.Kind {
		case entity.LineTax:
			s.Tax = cl.Amount
		case entity.LineTip:
			s.Tip = cl.Amount
		case entity.LineTotal:
			s.Total = cl.Amount
		case entity.LineSubtotal:
			s.Subtotal = cl.Amount
		}
	}
	if s.Subtotal == 0 && s.Total > 0 && s.Tax > 0 {
		s.Subtotal = s.Total - s.Tax - s.Tip
	}
	return s
}
