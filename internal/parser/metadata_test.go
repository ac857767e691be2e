package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractMerchant", func() {
	var p *Parser

	BeforeEach(func() {
		p = New(Config{}, nil)
	})

	It("takes the first proper-noun-like header line", func() {
		lines := []string{"Joe's Restaurant", "123 Main St", "Date: 2024-01-15"}
		Expect(p.extractMerchant(lines)).To(Equal("Joe's Restaurant"))
	})

	It("skips date and price lines", func() {
		lines := []string{"01/15/2024", "Total $50.66", "Acme Market"}
		Expect(p.extractMerchant(lines)).To(Equal("Acme Market"))
	})

	It("tolerates a trailing period on a business suffix", func() {
		Expect(p.extractMerchant([]string{"Acme Co."})).To(Equal("Acme Co."))
	})

	It("only scans the first few lines", func() {
		lines := []string{"123", "456", "789", "000", "111", "Joe's Restaurant"}
		Expect(p.extractMerchant(lines)).To(Equal(""))
	})

	It("returns empty when nothing qualifies", func() {
		Expect(p.extractMerchant([]string{"123 main st", "---"})).To(Equal(""))
	})
})

var _ = Describe("extractDate", func() {
	It("keeps an ISO date unchanged", func() {
		Expect(extractDate([]string{"Date: 2024-01-15"})).To(Equal("2024-01-15"))
	})

	It("normalizes month-first dates", func() {
		Expect(extractDate([]string{"01/15/2024"})).To(Equal("2024-01-15"))
	})

	It("normalizes day-first dates", func() {
		Expect(extractDate([]string{"15/01/2024"})).To(Equal("2024-01-15"))
	})

	It("handles dotted separators", func() {
		Expect(extractDate([]string{"2024.01.15"})).To(Equal("2024-01-15"))
	})

	It("handles month names", func() {
		Expect(extractDate([]string{"January 15, 2024"})).To(Equal("2024-01-15"))
		Expect(extractDate([]string{"Jan 15 2024"})).To(Equal("2024-01-15"))
	})

	It("expands two-digit years", func() {
		Expect(extractDate([]string{"03/15/99"})).To(Equal("1999-03-15"))
		Expect(extractDate([]string{"03/15/24"})).To(Equal("2024-03-15"))
	})

	It("finds the date anywhere in the line list", func() {
		lines := []string{"Joe's Restaurant", "Soda $3.00", "visited 01/15/2024 10:01"}
		Expect(extractDate(lines)).To(Equal("2024-01-15"))
	})

	It("falls back to the raw token when no calendar date fits", func() {
		Expect(extractDate([]string{"13/13/2024"})).To(Equal("13/13/2024"))
	})

	It("returns empty when no date token exists", func() {
		Expect(extractDate([]string{"Joe's Restaurant", "Soda $3.00"})).To(Equal(""))
	})
})
