package parser

import (
	"math"

	"github.com/theairavi-del/splitt-app/constants"
	"github.com/theairavi-del/splitt-app/internal/entity"
)

// CalculateConfidence scores an extraction in [0,1]: 0 when no items
// were found, otherwise the mean per-item confidence blended with a
// totals-consistency term. Item amounts are compared as extracted
// (receipt lines already print extended amounts, so quantities are not
// multiplied back in).
func CalculateConfidence(items []entity.Item, summary entity.Summary) float64 {
	if len(items) == 0 {
		return 0
	}

	var confSum, amountSum float64
	for _, it := range items {
		confSum += it.Confidence
		amountSum += it.Price
	}
	mean := confSum / float64(len(items))

	computed := amountSum + summary.Tax + summary.Tip
	diff := math.Abs(computed - summary.Total)
	tolerance := constants.TotalsTolerancePct * summary.Total

	consistency := constants.ConsistencyInconsistent
	switch {
	case diff <= tolerance:
		consistency = constants.ConsistencyWithinTolerance
	case diff <= 2*tolerance:
		consistency = constants.ConsistencyNearTolerance
	}

	score := constants.ItemConfidenceWeight*mean + constants.TotalsConsistencyWeight*consistency
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score*100) / 100
}
