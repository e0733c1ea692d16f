package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/finanalyzer/finanalyzer/internal/models"
)

const xlsxSheet = "Transactions"

// XLSXWriter writes a statement as an Excel workbook with one
// Transactions sheet, mirroring the CSV column layout. Amounts are
// written as numbers with a two-decimal cell format so spreadsheet
// sums work on them directly.
type XLSXWriter struct {
	IncludeMetadata bool
}

// WriteToFile writes the statement to an .xlsx file at the given path.
func (w *XLSXWriter) WriteToFile(path string, st *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, st)
}

// Write writes the workbook to the given writer.
func (w *XLSXWriter) Write(out io.Writer, st *models.Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	if w.IncludeMetadata {
		for _, meta := range [][2]string{
			{"# Profile", string(st.Profile)},
			{"# Account Number", st.AccountNumber},
			{"# Period", st.Period},
		} {
			if meta[1] == "" {
				continue
			}
			if err := setRow(f, row, meta[0], meta[1]); err != nil {
				return err
			}
			row++
		}
	}

	if err := setRow(f, row, "Date", "Narration", "Amount", "Type"); err != nil {
		return err
	}
	row++

	// 0.00 number format for the amount column.
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("create amount style: %w", err)
	}

	for _, txn := range st.Transactions {
		amount, _ := txn.Amount.Float64()
		if err := setRow(f, row, txn.Date, txn.Narration, amount, string(txn.Type)); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(3, row)
		if err := f.SetCellStyle(xlsxSheet, cell, cell, amountStyle); err != nil {
			return fmt.Errorf("style cell %s: %w", cell, err)
		}
		row++
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
