package parser

import (
	"regexp"
	"strings"

	"github.com/finanalyzer/finanalyzer/internal/models"
)

// accountNumberPattern matches the 9-16 digit account numbers Indian
// banks print in statement headers. Amounts never match: they carry
// separators and decimals.
var accountNumberPattern = regexp.MustCompile(`\b(\d{9,16})\b`)

// fillMetadata pulls account metadata out of the page text. Everything
// here is best-effort; a statement without a recognizable header just
// leaves the fields empty.
func fillMetadata(st *models.Statement, pages []string) {
	text := strings.Join(pages, "\n")
	if st.AccountNumber == "" {
		st.AccountNumber = findAccountNumber(text)
	}
	if st.Period == "" {
		st.Period = findPeriod(text)
	}
}

func findAccountNumber(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "account") || strings.Contains(lower, "a/c") {
			if m := accountNumberPattern.FindString(line); m != "" {
				return m
			}
		}
	}
	return ""
}

// findPeriod looks for two dates on a "period" or "statement" line and
// renders them as a range.
func findPeriod(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "period") && !strings.Contains(lower, "statement") {
			continue
		}
		dates := anyDatePattern.FindAllString(line, 2)
		if len(dates) == 2 {
			return dates[0] + " to " + dates[1]
		}
	}
	return ""
}

// anyDatePattern is the unanchored form of datePattern, for scanning
// inside header lines.
var anyDatePattern = regexp.MustCompile(`\d{2}[/-](?:\d{2}|[A-Za-z]{3})[/-]\d{2,4}`)
