package parsing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("normalizeAmount", func() {
	DescribeTable("normalizing tokens",
		func(token string, expected string, ok bool) {
			amount, got := normalizeAmount(token)
			Expect(got).To(Equal(ok))
			if ok {
				Expect(amount.StringFixed(2)).To(Equal(expected))
			}
		},
		Entry("dollar sign and thousands commas", "$1,234.50", "1234.50", true),
		Entry("bare integer", "12", "12.00", true),
		Entry("plain cents", "8.50", "8.50", true),
		Entry("no digits at all", "$", "", false),
		Entry("empty token", "", "", false),
	)
})

var _ = Describe("trailingAmount", func() {
	var (
		line  string
		token *moneyToken
	)

	JustBeforeEach(func() {
		token = trailingAmount(line)
	})

	When("the line ends with an amount", func() {
		BeforeEach(func() {
			line = "Burger 8.50"
		})

		It("should find it", func() {
			Expect(token).NotTo(BeNil())
			Expect(token.amount.StringFixed(2)).To(Equal("8.50"))
		})

		It("should report where the token sits", func() {
			Expect(line[token.start:token.end]).To(Equal("8.50"))
		})
	})

	When("the line has several amounts", func() {
		BeforeEach(func() {
			line = "2 Tacos 6.00"
		})

		It("should keep only the last one", func() {
			Expect(token.amount.StringFixed(2)).To(Equal("6.00"))
		})
	})

	When("the line is a numeric date", func() {
		BeforeEach(func() {
			line = "01/02/2024"
		})

		It("should find no amount", func() {
			Expect(token).To(BeNil())
		})
	})

	When("the line is a page marker", func() {
		BeforeEach(func() {
			line = "[[PAGE 2]]"
		})

		It("should find no amount", func() {
			Expect(token).To(BeNil())
		})
	})

	When("the line has no digits", func() {
		BeforeEach(func() {
			line = "Thank you!"
		})

		It("should find no amount", func() {
			Expect(token).To(BeNil())
		})
	})

	When("amount and description are merged by the recognizer", func() {
		BeforeEach(func() {
			line = "Burger8.50"
		})

		It("should still find the amount", func() {
			Expect(token).NotTo(BeNil())
			Expect(token.amount.StringFixed(2)).To(Equal("8.50"))
		})
	})

	When("the amount carries a dollar sign", func() {
		BeforeEach(func() {
			line = "Total $1,234.50"
		})

		It("should consume the sign and commas into one token", func() {
			Expect(line[token.start:token.end]).To(Equal("$1,234.50"))
			Expect(token.amount.StringFixed(2)).To(Equal("1234.50"))
		})
	})

	When("the amount ends the sentence", func() {
		BeforeEach(func() {
			line = "Total 11.50."
		})

		It("should not let the period kill the token", func() {
			Expect(token).NotTo(BeNil())
			Expect(token.amount.StringFixed(2)).To(Equal("11.50"))
		})
	})

	When("the line carries a time of day", func() {
		BeforeEach(func() {
			line = "01/02/2024 10:31"
		})

		It("should not read the time as an amount", func() {
			Expect(token).To(BeNil())
		})
	})

	When("digits run longer than a money fraction", func() {
		BeforeEach(func() {
			line = "ref 1.234"
		})

		It("should find no amount", func() {
			Expect(token).To(BeNil())
		})
	})
})
