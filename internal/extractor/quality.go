package extractor

import (
	"strings"
	"unicode"
)

// statementWords appear in virtually every bank statement. Extracted
// text containing none of them is treated as garbage from a broken
// font encoding rather than real content.
var statementWords = []string{
	"bank", "account", "balance", "date", "statement", "narration",
	"description", "amount", "credit", "debit", "withdrawal", "deposit",
	"transaction", "transfer", "upi", "imps", "neft", "atm",
	"opening", "closing", "total", "page", "period", "branch",
}

// IsReadableText reports whether the extracted pages look like real
// statement text: enough of it, mostly plain readable characters, and
// at least one recognizable statement word.
func IsReadableText(pages []string) bool {
	if totalTextLen(pages) <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, w := range statementWords {
		if strings.Contains(combined, w) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of plainly readable characters to all
// characters, 0.0 to 1.0. The check is a strict ASCII-plus-currency
// whitelist: unicode.IsLetter is too permissive and passes the
// accented garbage produced by identity-encoded fonts.
func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r) ||
				r == '₹' || r == '£' || r == '$' || r == '€' {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
