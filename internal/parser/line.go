package parser

import (
	"strings"

	"github.com/finanalyzer/finanalyzer/internal/models"
)

// LineStrategy is the fallback for banks without a known table layout.
// It works on plain page text, one whitespace-tokenized line at a
// time: date first, amount at or near the end, narration in between.
type LineStrategy struct{}

func (s *LineStrategy) ProfileName() models.Profile {
	return models.ProfileGeneric
}

func (s *LineStrategy) Parse(doc Document) (*models.Statement, error) {
	pages, err := doc.TextPages()
	if err != nil {
		return nil, err
	}

	st := &models.Statement{
		Profile:      models.ProfileGeneric,
		Transactions: models.StatementTable{},
	}
	for _, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			if txn, ok := parseLine(line); ok {
				st.Transactions = append(st.Transactions, txn)
			}
		}
	}
	fillMetadata(st, pages)
	return st, nil
}

// parseLine turns one text line into a transaction. ok is false for
// lines that hold none. Candidate amount tokens in order: the last
// token, then the second-to-last for statements that print a trailing
// balance column. When the last token parses it wins even if it is
// really the running balance — the line form carries nothing to tell
// the two apart.
func parseLine(line string) (models.Transaction, bool) {
	parts := strings.Fields(sanitizeOCRLine(line))
	if len(parts) == 0 || !isDate(parts[0]) {
		return models.Transaction{}, false
	}

	amt, dir, ok := parseAmount(parts[len(parts)-1])
	if !ok && len(parts) > 1 {
		amt, dir, ok = parseAmount(parts[len(parts)-2])
	}
	if !ok {
		return models.Transaction{}, false
	}

	narration := strings.Join(parts[1:len(parts)-1], " ")
	// Best-effort: drop the amount's text where it leaked into the
	// narration. Amounts formatted differently in the narration (other
	// separator conventions) survive this.
	narration = strings.ReplaceAll(narration, amt.StringFixed(2), "")
	narration = strings.Join(strings.Fields(narration), " ")

	return models.Transaction{
		Date:      parts[0],
		Narration: narration,
		Amount:    amt,
		Type:      dir,
	}, true
}
