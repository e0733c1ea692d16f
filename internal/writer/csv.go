package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/finanalyzer/finanalyzer/internal/models"
)

// Column headers of the exported table.
var csvHeader = []string{"Date", "Narration", "Amount", "Type"}

// CSVWriter writes a statement as UTF-8 comma-separated text: optional
// #-prefixed metadata rows, a header row, one record per line, no
// index column.
type CSVWriter struct {
	IncludeMetadata bool
}

// WriteToFile writes the statement to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, st *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, st)
}

// Write writes the statement in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, st *models.Statement) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeMetadata {
		if st.Profile != "" {
			writer.Write([]string{"# Profile", string(st.Profile)})
		}
		if st.AccountNumber != "" {
			writer.Write([]string{"# Account Number", st.AccountNumber})
		}
		if st.Period != "" {
			writer.Write([]string{"# Period", st.Period})
		}
	}

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, txn := range st.Transactions {
		row := []string{
			txn.Date,
			txn.Narration,
			txn.Amount.StringFixed(2),
			string(txn.Type),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV reads a table previously exported by CSVWriter. Metadata
// rows and the header row are skipped; amounts keep their two decimal
// digits exactly.
func ReadCSV(in io.Reader) (models.StatementTable, error) {
	r := csv.NewReader(in)
	r.Comment = '#'

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}

	table := models.StatementTable{}
	for i, rec := range records {
		if i == 0 {
			// Header row.
			continue
		}
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", i+1, len(csvHeader), len(rec))
		}
		amt, err := decimal.NewFromString(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount %q: %w", i+1, rec[2], err)
		}
		table = append(table, models.Transaction{
			Date:      rec[0],
			Narration: rec[1],
			Amount:    amt,
			Type:      models.TxnType(rec[3]),
		})
	}
	return table, nil
}
