package parsing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// An optional dollar sign, digit groups with optional thousands commas, and
// an optional two-digit fractional part.
var moneyRe = regexp.MustCompile(`\$?\d+(?:,\d{3})*(?:\.\d{2})?`)

// moneyToken is one amount-looking substring of a line and where it sits,
// so the item description can be derived by cutting it back out.
type moneyToken struct {
	start  int
	end    int
	amount decimal.Decimal
}

// trailingAmount returns the last money token on a line, or nil when the line
// has none. Receipts place the amount at line end, so on a line with several
// candidates only the last one counts.
func trailingAmount(line string) *moneyToken {
	var last *moneyToken
	for _, loc := range moneyRe.FindAllStringIndex(line, -1) {
		if !standalone(line, loc[0], loc[1]) {
			continue
		}
		amount, ok := normalizeAmount(line[loc[0]:loc[1]])
		if !ok {
			continue
		}
		last = &moneyToken{start: loc[0], end: loc[1], amount: amount}
	}
	return last
}

// standalone reports whether the match at [start,end) is a free-standing
// token rather than a fragment of a larger run. This keeps date and phone
// number segments like "01/02/2024" and page markers like "[[PAGE 2]]" from
// being read as amounts, while still accepting OCR-merged tokens like
// "Burger8.50".
func standalone(line string, start, end int) bool {
	if start > 0 {
		switch line[start-1] {
		case '/', '-', '.', ',', ':', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return false
		}
	}
	if end == len(line) {
		return true
	}
	switch c := line[end]; c {
	case ' ', '\t':
		return true
	case '.', ',':
		// Trailing punctuation is fine, a longer numeric run is not.
		return end+1 == len(line) || line[end+1] < '0' || line[end+1] > '9'
	case ';', ')', '%', '!', '?', '*':
		return true
	default:
		return false
	}
}

// normalizeAmount strips every character except digits and the decimal point,
// parses the remainder as base-10, and rounds to the nearest cent. A token
// that does not survive the parse yields no amount.
func normalizeAmount(token string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range token {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Round(2), true
}
