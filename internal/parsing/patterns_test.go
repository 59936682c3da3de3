package parsing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("matchDate", func() {
	DescribeTable("date alternatives",
		func(line string, expected string) {
			Expect(matchDate(line)).To(Equal(expected))
		},
		Entry("day-first with slashes", "Date: 01/02/2024 10:31", "01/02/2024"),
		Entry("day-first with dashes", "01-02-2024", "01-02-2024"),
		Entry("two-digit year", "01/02/24", "01/02/24"),
		Entry("year-first", "2024/01/02", "2024/01/02"),
		Entry("year-first with dashes", "2024-01-02", "2024-01-02"),
		Entry("abbreviated month", "Jan 2, 2024", "Jan 2, 2024"),
		Entry("full month without comma", "January 2 2024", "January 2 2024"),
		Entry("month with trailing period", "Sep. 15, 2024", "Sep. 15, 2024"),
		Entry("lowercase month", "mar 3 24", "mar 3 24"),
		Entry("no date at all", "Burger 8.50", ""),
		Entry("bare numbers are not a date", "8.50", ""),
	)

	It("returns the matched capture, not the whole line", func() {
		Expect(matchDate("Visited on 01/02/2024 thanks")).To(Equal("01/02/2024"))
	})
})

var _ = Describe("keyword matchers", func() {
	Describe("subtotalRe", func() {
		It("matches the plain word", func() {
			Expect(subtotalRe.MatchString("Subtotal 10.00")).To(BeTrue())
		})

		It("matches hyphenated and spaced variants", func() {
			Expect(subtotalRe.MatchString("SUB-TOTAL 10.00")).To(BeTrue())
			Expect(subtotalRe.MatchString("sub total 10.00")).To(BeTrue())
		})

		It("does not match a bare total", func() {
			Expect(subtotalRe.MatchString("Total 10.00")).To(BeFalse())
		})
	})

	Describe("taxRe", func() {
		It("matches tax, sales tax and vat as whole words", func() {
			Expect(taxRe.MatchString("Tax 1.00")).To(BeTrue())
			Expect(taxRe.MatchString("Sales Tax 1.00")).To(BeTrue())
			Expect(taxRe.MatchString("VAT 1.00")).To(BeTrue())
		})

		It("does not match tax embedded in a word", func() {
			Expect(taxRe.MatchString("Taxi fare 9.00")).To(BeFalse())
		})
	})

	Describe("totalRe", func() {
		It("matches total as a whole word", func() {
			Expect(totalRe.MatchString("TOTAL 11.50")).To(BeTrue())
		})

		It("does not match the total inside subtotal", func() {
			Expect(totalRe.MatchString("Subtotal 10.00")).To(BeFalse())
		})

		It("matches the total half of a hyphenated subtotal", func() {
			// Which is why subtotalRe must be evaluated first.
			Expect(totalRe.MatchString("Sub-Total 10.00")).To(BeTrue())
		})
	})

	Describe("tenderRe", func() {
		It("matches cash and change regardless of case", func() {
			Expect(tenderRe.MatchString("CASH 20.00")).To(BeTrue())
			Expect(tenderRe.MatchString("Change due 1.50")).To(BeTrue())
		})

		It("does not match exchanged", func() {
			Expect(tenderRe.MatchString("Exchanged item 5.00")).To(BeFalse())
		})
	})
})
