package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finanalyzer/finanalyzer/internal/models"
)

// datePattern matches tokens beginning DD<sep>(DD|MMM)<sep>YY or YYYY
// with / or - separators, e.g. 15/03/24, 12-Jan-2023.
var datePattern = regexp.MustCompile(`^\d{2}[/-](?:\d{2}|[A-Za-z]{3})[/-]\d{2,4}`)

// isDate reports whether the token starts with a statement date.
func isDate(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && datePattern.MatchString(s)
}

// amountPattern matches a monetary magnitude with exactly two decimal
// digits, e.g. 12,345.67 or 500.00.
var amountPattern = regexp.MustCompile(`[\d,]+\.\d{2}`)

// markerReplacer strips thousands separators, the Rs. currency prefix
// and Dr/Cr direction markers before the numeric scan.
var markerReplacer = strings.NewReplacer(
	",", "", "Rs.", "", "Cr", "", "CR", "", "Dr", "", "DR", "",
)

// parseAmount extracts the numeric magnitude and direction from a raw
// cell or token. Direction is Credit when a Cr marker appears anywhere
// in the token, Debit otherwise. When the cleaned token holds several
// amount-shaped substrings the last one wins: reference numbers print
// before the real amount. ok is false for tokens that carry no amount,
// including a bare direction marker with no number.
func parseAmount(raw string) (decimal.Decimal, models.TxnType, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, "", false
	}

	isCredit := strings.Contains(raw, "Cr") || strings.Contains(raw, "CR") ||
		strings.HasSuffix(raw, "Cr")

	cleaned := strings.TrimSpace(markerReplacer.Replace(raw))
	matches := amountPattern.FindAllString(cleaned, -1)
	if len(matches) == 0 {
		return decimal.Decimal{}, "", false
	}

	amt, err := decimal.NewFromString(strings.ReplaceAll(matches[len(matches)-1], ",", ""))
	if err != nil {
		return decimal.Decimal{}, "", false
	}

	if isCredit {
		return amt, models.Credit, true
	}
	return amt, models.Debit, true
}

// OCR output misreads periods inside amounts as semicolons or colons
// and tacks stray tokens after them. sanitizeOCRLine repairs the usual
// damage before tokenizing, e.g. "19,720; 15" becomes "19,720.15".
var (
	ocrSemicolonFix = regexp.MustCompile(`(\d);(\s*)(\d)`)
	ocrColonFix     = regexp.MustCompile(`(\d):(\d)`)
	ocrColonSpace   = regexp.MustCompile(`(\d):\s`)
	ocrColonEnd     = regexp.MustCompile(`(\d):$`)
	ocrStrayNA      = regexp.MustCompile(`\s+NA\b`)
)

func sanitizeOCRLine(line string) string {
	line = ocrSemicolonFix.ReplaceAllString(line, "$1.$3")
	line = ocrColonFix.ReplaceAllString(line, "$1.$2")
	line = ocrColonSpace.ReplaceAllString(line, "$1 ")
	line = ocrColonEnd.ReplaceAllString(line, "$1")
	line = ocrStrayNA.ReplaceAllString(line, "")
	return line
}
