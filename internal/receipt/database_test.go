package receipt

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/tabtally/tabtally/internal/parsing"
)

var _ = Describe("BoltDB", func() {
	var (
		tmpDir string
		dbPath string
		db     *BoltDB
	)

	newStoredReceipt := func(id string) *Receipt {
		total := decimal.RequireFromString("11.50")
		return &Receipt{
			ID: id,
			Parsed: parsing.ParsedReceipt{
				Vendor:   "Joe's Diner",
				Date:     "01/02/2024",
				Total:    &total,
				Currency: parsing.CurrencyUSD,
				LineItems: []parsing.LineItem{
					{Description: "Burger", Amount: decimal.RequireFromString("8.50")},
					{Description: "Fries", Amount: decimal.RequireFromString("2.00"), Selected: true},
				},
				RawText: "Joe's Diner\n01/02/2024\nBurger 8.50\nFries 2.00\nTotal 11.50",
			},
			Filename:    id + "_receipt.jpg",
			ContentType: "image/jpeg",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
	}

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		dbPath = filepath.Join(tmpDir, "test.db")
		var err error
		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Describe("SaveReceipt", func() {
		var (
			receipt *Receipt
			err     error
		)

		BeforeEach(func() {
			receipt = newStoredReceipt("test-id")
		})

		JustBeforeEach(func() {
			err = db.SaveReceipt(receipt)
		})

		When("saving succeeds", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should round-trip the parsed record", func() {
				loaded, getErr := db.GetReceipt("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(loaded.Parsed.Vendor).To(Equal("Joe's Diner"))
				Expect(loaded.Parsed.Date).To(Equal("01/02/2024"))
				Expect(loaded.Parsed.Total.StringFixed(2)).To(Equal("11.50"))
				Expect(loaded.Parsed.Currency).To(Equal(parsing.CurrencyUSD))
			})

			It("should round-trip line items with their selection flags", func() {
				loaded, getErr := db.GetReceipt("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(loaded.Parsed.LineItems).To(HaveLen(2))
				Expect(loaded.Parsed.LineItems[0].Selected).To(BeFalse())
				Expect(loaded.Parsed.LineItems[1].Selected).To(BeTrue())
				Expect(loaded.Parsed.LineItems[1].Amount.StringFixed(2)).To(Equal("2.00"))
			})

			It("should keep absent optional fields absent", func() {
				loaded, getErr := db.GetReceipt("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(loaded.Parsed.Subtotal).To(BeNil())
				Expect(loaded.Parsed.Tax).To(BeNil())
			})
		})

		When("overwriting an existing receipt", func() {
			JustBeforeEach(func() {
				receipt.Parsed.Vendor = "New Vendor"
				err = db.SaveReceipt(receipt)
			})

			It("should keep the latest version", func() {
				loaded, getErr := db.GetReceipt("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(loaded.Parsed.Vendor).To(Equal("New Vendor"))
			})
		})
	})

	Describe("GetReceipt", func() {
		When("the receipt does not exist", func() {
			It("returns the error", func() {
				_, err := db.GetReceipt("missing")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not found"))
			})
		})
	})

	Describe("ListReceipts", func() {
		When("the database is empty", func() {
			It("returns an empty slice, not nil", func() {
				receipts, err := db.ListReceipts()
				Expect(err).NotTo(HaveOccurred())
				Expect(receipts).NotTo(BeNil())
				Expect(receipts).To(BeEmpty())
			})
		})

		When("receipts exist", func() {
			BeforeEach(func() {
				Expect(db.SaveReceipt(newStoredReceipt("a-1"))).To(Succeed())
				Expect(db.SaveReceipt(newStoredReceipt("b-2"))).To(Succeed())
			})

			It("returns all of them in key order", func() {
				receipts, err := db.ListReceipts()
				Expect(err).NotTo(HaveOccurred())
				Expect(receipts).To(HaveLen(2))
				Expect(receipts[0].ID).To(Equal("a-1"))
				Expect(receipts[1].ID).To(Equal("b-2"))
			})
		})
	})

	Describe("DeleteReceipt", func() {
		BeforeEach(func() {
			Expect(db.SaveReceipt(newStoredReceipt("test-id"))).To(Succeed())
		})

		It("removes the receipt", func() {
			Expect(db.DeleteReceipt("test-id")).To(Succeed())
			_, err := db.GetReceipt("test-id")
			Expect(err).To(HaveOccurred())
		})
	})
})
