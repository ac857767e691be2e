package constants

// Per-rule item confidences. Rule order, not confidence, decides ties:
// the dotted-ledger rule always runs before the generic trailing-price
// fallback even though both could match the same line.
const (
	ConfidenceItemExplicitQty = 0.95 // "2x Burger $8.00"
	ConfidenceItemDotted      = 0.92 // "BURGER......$8.00"
	ConfidenceItemDottedHint  = 0.90 // standard match on a line with a filler run
	ConfidenceItemStandard    = 0.85 // "Burger $8.00"
	ConfidenceItemFallback    = 0.70 // any line ending in a number
)

// Confidence blend weights and totals-consistency bands.
const (
	ItemConfidenceWeight    = 0.6
	TotalsConsistencyWeight = 0.4

	TotalsTolerancePct = 0.05 // 5% of declared total

	ConsistencyWithinTolerance = 1.0
	ConsistencyNearTolerance   = 0.8
	ConsistencyInconsistent    = 0.5
)

// Fallback-rule address guard: a trailing number in this range on a line
// whose residual name starts with a street-type token is an address, not
// a price.
const (
	AddressGuardMin = 100
	AddressGuardMax = 99999
)

// DefaultSimilarityThreshold is the fuzzy-merge cutoff when the caller
// does not supply one.
const DefaultSimilarityThreshold = 0.85

// MergeConfidencePenalty is applied to the best confidence of a merged
// group, reflecting merge uncertainty.
const MergeConfidencePenalty = 0.95

// MerchantScanLines caps how many leading lines are considered for the
// merchant name.
const MerchantScanLines = 5
