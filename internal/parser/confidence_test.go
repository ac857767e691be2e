package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/theairavi-del/splitt-app/internal/entity"
)

var _ = Describe("CalculateConfidence", func() {
	It("returns exactly 0 for an empty item list", func() {
		Expect(CalculateConfidence(nil, entity.Summary{Total: 50})).To(Equal(0.0))
		Expect(CalculateConfidence([]entity.Item{}, entity.Summary{})).To(Equal(0.0))
	})

	When("item amounts corroborate the declared total", func() {
		It("blends the item mean with full consistency", func() {
			items := []entity.Item{{Name: "Soda", Price: 10, Quantity: 1, Confidence: 0.9}}
			score := CalculateConfidence(items, entity.Summary{Total: 10})
			Expect(score).To(Equal(0.94)) // 0.6*0.9 + 0.4*1.0
		})

		It("counts tax and tip toward the computed total", func() {
			items := []entity.Item{{Name: "Soda", Price: 10, Quantity: 1, Confidence: 0.9}}
			s := entity.Summary{Tax: 1, Tip: 2, Total: 13}
			Expect(CalculateConfidence(items, s)).To(Equal(0.94))
		})
	})

	When("the computed total is near but outside tolerance", func() {
		It("uses the reduced consistency band", func() {
			items := []entity.Item{{Name: "Soda", Price: 93, Quantity: 1, Confidence: 0.9}}
			score := CalculateConfidence(items, entity.Summary{Total: 100})
			Expect(score).To(Equal(0.86)) // 0.6*0.9 + 0.4*0.8
		})
	})

	When("the totals disagree badly", func() {
		It("degrades but does not zero the score", func() {
			items := []entity.Item{{Name: "Soda", Price: 10, Quantity: 1, Confidence: 0.9}}
			score := CalculateConfidence(items, entity.Summary{Total: 100})
			Expect(score).To(Equal(0.74)) // 0.6*0.9 + 0.4*0.5
		})
	})

	It("stays within [0,1] for hostile totals", func() {
		items := []entity.Item{{Name: "Soda", Price: 10, Quantity: 1, Confidence: 1.0}}
		for _, s := range []entity.Summary{
			{Total: -50},
			{Total: 1e12},
			{Tax: -3, Tip: -4, Total: 0},
			{Tax: 1e9, Total: 1},
		} {
			score := CalculateConfidence(items, s)
			Expect(score).To(BeNumerically(">=", 0))
			Expect(score).To(BeNumerically("<=", 1))
		}
	})

	It("rounds to two decimal places", func() {
		items := []entity.Item{
			{Name: "A1", Price: 1, Quantity: 1, Confidence: 0.95},
			{Name: "B2", Price: 1, Quantity: 1, Confidence: 0.85},
			{Name: "C3", Price: 1, Quantity: 1, Confidence: 0.85},
		}
		// mean 0.8833…, inconsistent totals -> 0.6*mean + 0.2 = 0.73
		Expect(CalculateConfidence(items, entity.Summary{Total: 100})).To(Equal(0.73))
	})
})
