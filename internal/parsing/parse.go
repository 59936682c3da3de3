package parsing

import "strings"

// scanState is the accumulator carried through the classification pass:
// the record built so far, whether any item has been accepted yet, and which
// item a wrapped continuation line should extend.
type scanState struct {
	rec       *ParsedReceipt
	itemsSeen bool
	lastItem  int
}

// Parse turns raw recognized text into a structured receipt. It is total over
// all string inputs: lines that fit no rule are skipped, tokens that fail
// numeric normalization degrade to "no amount", and the worst case is a
// sparse record, never an error.
func Parse(text string) ParsedReceipt {
	rec := ParsedReceipt{
		LineItems: []LineItem{},
		RawText:   text,
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return rec
	}

	// The first retained line is taken verbatim as the vendor, no validation.
	rec.Vendor = lines[0]

	for _, line := range lines {
		if m := matchDate(line); m != "" {
			rec.Date = m
			break
		}
	}

	if strings.Contains(text, "$") {
		rec.Currency = CurrencyUSD
	}

	state := scanState{rec: &rec, lastItem: -1}
	for _, line := range lines {
		state.consume(line)
	}

	// No explicit total line: fall back to the sum of the accepted item
	// amounts. Deliberately excludes tax.
	if rec.Total == nil && len(rec.LineItems) > 0 {
		sum := rec.ItemTotal()
		rec.Total = &sum
	}

	return rec
}

// consume classifies a single line and folds it into the state. Keyword rules
// run in subtotal, tax, total order and consume the line whether or not it
// carries an amount. For each of the three fields the last match in document
// order wins.
func (s *scanState) consume(line string) {
	token := trailingAmount(line)

	switch {
	case subtotalRe.MatchString(line):
		if token != nil {
			s.rec.Subtotal = &token.amount
		}
		return
	case taxRe.MatchString(line):
		if token != nil {
			s.rec.Tax = &token.amount
		}
		return
	case totalRe.MatchString(line):
		if token != nil {
			s.rec.Total = &token.amount
		}
		return
	}

	// Line-item acceptance: a line with digits and a trailing amount that is
	// not a payment/tender line.
	if token != nil && hasDigit(line) && !tenderRe.MatchString(line) {
		desc := line
		if token.start > 0 {
			desc = line[:token.start] + line[token.end:]
		}
		desc = strings.TrimRight(strings.TrimSpace(desc), "- \t")
		if desc != "" {
			s.rec.LineItems = append(s.rec.LineItems, LineItem{
				Description: desc,
				Amount:      token.amount,
			})
			s.itemsSeen = true
			s.lastItem = len(s.rec.LineItems) - 1
		}
		return
	}

	// A wrapped continuation of the previous item's description. Only active
	// once the first item has been accepted; the transition never reverts.
	if token == nil && s.itemsSeen && hasLetter(line) {
		s.rec.LineItems[s.lastItem].Description += " " + line
	}
}
