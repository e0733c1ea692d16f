package parser

import (
	"strings"

	"github.com/finanalyzer/finanalyzer/internal/extractor"
	"github.com/finanalyzer/finanalyzer/internal/models"
)

// TableStrategy extracts transactions from geometry-detected tables.
// Tuned for Kotak Mahindra statement layouts, where each transaction
// occupies one table row: date, narration cells, then amount.
type TableStrategy struct {
	Config extractor.TableConfig
}

func (s *TableStrategy) ProfileName() models.Profile {
	return models.ProfileKotak
}

func (s *TableStrategy) Parse(doc Document) (*models.Statement, error) {
	st := &models.Statement{
		Profile:      models.ProfileKotak,
		Transactions: models.StatementTable{},
	}

	for i := 1; i <= doc.NumPages(); i++ {
		tables, err := doc.Tables(i, s.Config)
		if err != nil {
			// A malformed page never aborts the document.
			continue
		}
		for _, table := range tables {
			for _, row := range table.Rows {
				if txn, ok := parseRow(row); ok {
					st.Transactions = append(st.Transactions, txn)
				}
			}
		}
	}

	// Metadata lives in the page text, outside the detected table.
	if pages, err := doc.TextPages(); err == nil {
		fillMetadata(st, pages)
	}

	return st, nil
}

// parseRow turns one table row into a transaction. ok is false for
// rows that carry none: headers, footers, continuation lines, and
// separator rows whose amount is exactly zero.
func parseRow(cells []string) (models.Transaction, bool) {
	clean := make([]string, len(cells))
	empty := true
	for i, c := range cells {
		clean[i] = strings.TrimSpace(c)
		if clean[i] != "" {
			empty = false
		}
	}
	if empty || !isDate(clean[0]) {
		return models.Transaction{}, false
	}

	// Candidate amount cells in order, rightmost first; cell 0 is the
	// date. The rightmost parseable column is the amount in most
	// layouts. A balance column printed after the amount would be
	// picked instead — known limitation.
	for i := len(clean) - 1; i >= 1; i-- {
		amt, dir, ok := parseAmount(clean[i])
		if !ok {
			continue
		}
		if amt.IsZero() {
			// Opening-balance separators and similar noise rows.
			return models.Transaction{}, false
		}
		var parts []string
		for _, c := range clean[1:i] {
			if c != "" {
				parts = append(parts, c)
			}
		}
		return models.Transaction{
			Date:      clean[0],
			Narration: strings.Join(parts, " "),
			Amount:    amt,
			Type:      dir,
		}, true
	}

	return models.Transaction{}, false
}
