// Package fuzzy merges near-duplicate line items using normalized
// edit-distance similarity. It is invoked by callers on a parsed item
// list; the main parse never deduplicates on its own.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"

	"github.com/theairavi-del/splitt-app/constants"
	"github.com/theairavi-del/splitt-app/internal/entity"
)

var levParams = levenshtein.NewParams()

// Similarity returns 1 - dist(a,b)/max(len(a),len(b)) over the trimmed,
// lowercased inputs. It is symmetric, reflexive and bounded in [0,1].
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	longest := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.Distance(a, b, levParams)
	return 1.0 - float64(dist)/float64(longest)
}

// MergeSimilarItems clusters items greedily: the first unassigned item
// seeds a group, and every later unassigned item whose similarity to
// the seed meets the threshold joins it. Members are only ever compared
// to the seed, so transitively similar chains may stay split; that is
// accepted. A threshold <= 0 falls back to the default.
func MergeSimilarItems(items []entity.Item, threshold float64) []entity.Item {
	if threshold <= 0 {
		threshold = constants.DefaultSimilarityThreshold
	}
	merged := make([]entity.Item, 0, len(items))
	used := make([]bool, len(items))
	for i := range items {
		if used[i] {
			continue
		}
		group := []entity.Item{items[i]}
		for j := i + 1; j < len(items); j++ {
			if used[j] {
				continue
			}
			if Similarity(items[i].Name, items[j].Name) >= threshold {
				used[j] = true
				group = append(group, items[j])
			}
		}
		merged = append(merged, mergeGroup(group))
	}
	return merged
}

// mergeGroup keeps the seed's name, averages prices, sums quantities
// and keeps the best confidence with a small merge penalty. Singleton
// groups pass through untouched.
func mergeGroup(group []entity.Item) entity.Item {
	if len(group) == 1 {
		return group[0]
	}
	out := group[0]
	var priceSum, best float64
	qty := 0
	for _, it := range group {
		priceSum += it.Price
		qty += it.Quantity
		if it.Confidence > best {
			best = it.Confidence
		}
	}
	out.Price = priceSum / float64(len(group))
	out.Quantity = qty
	out.Confidence = best * constants.MergeConfidencePenalty
	return out
}
