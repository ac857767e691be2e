package fuzzy

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/theairavi-del/splitt-app/internal/entity"
)

var _ = Describe("Similarity", func() {
	It("is reflexive", func() {
		Expect(Similarity("Burger", "Burger")).To(Equal(1.0))
	})

	It("ignores case and surrounding whitespace", func() {
		Expect(Similarity("  CHICKEN WINGS ", "chicken wings")).To(Equal(1.0))
	})

	It("is symmetric", func() {
		Expect(Similarity("Wings", "Wing")).To(Equal(Similarity("Wing", "Wings")))
	})

	It("normalizes a single edit by the longer name", func() {
		// distance 1 over 5 runes
		Expect(Similarity("Wings", "Wing")).To(BeNumerically("~", 0.8, 1e-9))
	})

	It("stays within [0,1] for unrelated names", func() {
		s := Similarity("Caesar Salad", "Tiramisu")
		Expect(s).To(BeNumerically(">=", 0.0))
		Expect(s).To(BeNumerically("<", 0.5))
	})

	It("treats two empty names as identical", func() {
		Expect(Similarity("", "   ")).To(Equal(1.0))
	})
})

var _ = Describe("MergeSimilarItems", func() {
	wings := entity.Item{Name: "Chicken Wings", Price: 12.00, Quantity: 1, Confidence: 0.95}
	wing := entity.Item{Name: "Chicken Wing", Price: 11.00, Quantity: 1, Confidence: 0.85}
	salad := entity.Item{Name: "Caesar Salad", Price: 12.50, Quantity: 1, Confidence: 0.85}

	It("leaves distinct items alone at the default threshold", func() {
		out := MergeSimilarItems([]entity.Item{wings, salad}, 0)
		Expect(out).To(Equal([]entity.Item{wings, salad}))
	})

	It("does not merge Wings/Wing at a 0.85 threshold", func() {
		out := MergeSimilarItems([]entity.Item{
			{Name: "Wings", Price: 12.00, Quantity: 1, Confidence: 0.85},
			{Name: "Wing", Price: 11.00, Quantity: 1, Confidence: 0.85},
		}, 0.85)
		Expect(out).To(HaveLen(2))
	})

	It("merges Wings/Wing at a 0.8 threshold", func() {
		out := MergeSimilarItems([]entity.Item{
			{Name: "Wings", Price: 12.00, Quantity: 1, Confidence: 0.85},
			{Name: "Wing", Price: 11.00, Quantity: 1, Confidence: 0.80},
		}, 0.8)
		Expect(out).To(HaveLen(1))
		Expect(out[0].Name).To(Equal("Wings"))
		Expect(out[0].Price).To(BeNumerically("~", 11.50, 1e-9))
		Expect(out[0].Quantity).To(Equal(2))
		Expect(out[0].Confidence).To(BeNumerically("~", 0.85*0.95, 1e-9))
	})

	It("keeps the seed's name and sums quantities across a wider group", func() {
		out := MergeSimilarItems([]entity.Item{
			{Name: "Chicken Wings", Price: 12.00, Quantity: 2, Confidence: 0.95},
			salad,
			{Name: "Chicken Wing", Price: 11.00, Quantity: 1, Confidence: 0.85},
		}, 0.8)
		Expect(out).To(HaveLen(2))
		Expect(out[0].Name).To(Equal("Chicken Wings"))
		Expect(out[0].Quantity).To(Equal(3))
		Expect(out[1]).To(Equal(salad))
	})

	It("does not penalize confidence for singleton groups", func() {
		out := MergeSimilarItems([]entity.Item{wings}, 0.85)
		Expect(out[0].Confidence).To(Equal(0.95))
	})

	It("returns an empty slice for empty input", func() {
		Expect(MergeSimilarItems(nil, 0.85)).To(BeEmpty())
		Expect(MergeSimilarItems(nil, 0.85)).NotTo(BeNil())
	})

	It("preserves first-seen order of group seeds", func() {
		out := MergeSimilarItems([]entity.Item{salad, wings, wing}, 0.8)
		Expect(out[0].Name).To(Equal("Caesar Salad"))
		Expect(out[1].Name).To(Equal("Chicken Wings"))
	})
})
