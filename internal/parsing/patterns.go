package parsing

import (
	"regexp"
	"strings"
)

// The keyword matchers are intentionally small and separate so each heuristic
// can be verified on its own. The classification scan composes them.
var (
	// Numeric dates with / or - separators (day-first or year-first), or a
	// textual month name followed by day and year. Alternatives are tried
	// left to right within each line.
	dateRe = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}` +
		`|\d{2,4}[/-]\d{1,2}[/-]\d{1,2}` +
		`|(?i:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2},?\s+\d{2,4})\b`)

	// "subtotal" must be tested before "total": the word lexically contains
	// it, and "sub-total"/"sub total" variants trip a bare \btotal\b match.
	subtotalRe = regexp.MustCompile(`(?i)\bsub[\s-]*total\b`)
	taxRe      = regexp.MustCompile(`(?i)\b(?:tax|vat)\b`)
	totalRe    = regexp.MustCompile(`(?i)\btotal\b`)

	// Payment/tender lines, not purchased items. Known limitation: this also
	// drops a legitimate item whose description contains one of these words.
	tenderRe = regexp.MustCompile(`(?i)\b(?:change|cash)\b`)

	letterRe = regexp.MustCompile(`[a-zA-Z]`)
)

// matchDate returns the first date-looking substring of line, or "".
func matchDate(line string) string {
	return dateRe.FindString(line)
}

func hasDigit(line string) bool {
	return strings.ContainsAny(line, "0123456789")
}

func hasLetter(line string) bool {
	return letterRe.MatchString(line)
}
