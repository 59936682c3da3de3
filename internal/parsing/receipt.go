package parsing

import "github.com/shopspring/decimal"

// CurrencyUSD is the only currency the parser detects.
const CurrencyUSD = "USD"

// ParsedReceipt is the structured form of one receipt's recognized text.
// Optional fields are left absent (nil pointer or empty string) when the text
// gave no evidence for them, so callers can tell "not found" from zero.
type ParsedReceipt struct {
	Vendor    string           `json:"vendor,omitempty"`
	Date      string           `json:"date,omitempty"` // verbatim matched substring, not a calendar value
	Subtotal  *decimal.Decimal `json:"subtotal,omitempty"`
	Tax       *decimal.Decimal `json:"tax,omitempty"`
	Total     *decimal.Decimal `json:"total,omitempty"`
	Currency  string           `json:"currency,omitempty"`
	LineItems []LineItem       `json:"line_items"`
	RawText   string           `json:"raw_text"`
}

// LineItem is one purchased good or service with its price.
// Selected is never set by the parser; it belongs to the caller that lets a
// user pick a subset of items.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Selected    bool            `json:"selected"`
}

// ItemTotal returns the sum of all line item amounts, rounded to the cent.
func (r ParsedReceipt) ItemTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range r.LineItems {
		sum = sum.Add(item.Amount)
	}
	return sum.Round(2)
}

// SelectedTotal returns the running total of the currently selected items,
// rounded to the cent.
func (r ParsedReceipt) SelectedTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range r.LineItems {
		if item.Selected {
			sum = sum.Add(item.Amount)
		}
	}
	return sum.Round(2)
}
