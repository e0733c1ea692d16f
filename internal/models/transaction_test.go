package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatementTableTotals(t *testing.T) {
	table := StatementTable{
		{Date: "15/03/24", Narration: "UPI", Amount: decimal.RequireFromString("1234.56"), Type: Debit},
		{Date: "16/03/24", Narration: "SALARY", Amount: decimal.RequireFromString("50000.00"), Type: Credit},
		{Date: "17/03/24", Narration: "ATM", Amount: decimal.RequireFromString("500.00"), Type: Debit},
	}

	if got := table.TotalDebit(); got.StringFixed(2) != "1734.56" {
		t.Errorf("TotalDebit: got %s, want 1734.56", got.StringFixed(2))
	}
	if got := table.TotalCredit(); got.StringFixed(2) != "50000.00" {
		t.Errorf("TotalCredit: got %s, want 50000.00", got.StringFixed(2))
	}
}

func TestStatementTableTotalsEmpty(t *testing.T) {
	var table StatementTable
	if !table.TotalDebit().IsZero() {
		t.Error("empty table must have zero debit total")
	}
	if !table.TotalCredit().IsZero() {
		t.Error("empty table must have zero credit total")
	}
}
