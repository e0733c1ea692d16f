package parser

import (
	"testing"

	"github.com/finanalyzer/finanalyzer/internal/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		amount   string
		txnType  models.TxnType
		wantOK   bool
	}{
		{"25.99", "25.99", models.Debit, true},
		{"1,234.56", "1234.56", models.Debit, true},
		{"1,234.56 Dr", "1234.56", models.Debit, true},
		{"50,000.00 Cr", "50000.00", models.Credit, true},
		{"50,000.00CR", "50000.00", models.Credit, true},
		{"Rs.1,234.56", "1234.56", models.Debit, true},
		{"0.00", "0.00", models.Debit, true},
		// Rightmost amount wins when a reference number precedes it.
		{"REF 1234.00 500.00", "500.00", models.Debit, true},
		// Direction marker with no amount is not an amount.
		{"Cr", "", "", false},
		{"Dr", "", "", false},
		{"", "", "", false},
		{"UPI PAYMENT XYZ", "", "", false},
		// No two-decimal tail means no amount.
		{"1234", "", "", false},
		{"1234.5", "", "", false},
		{" 25.99 ", "25.99", models.Debit, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amt, txnType, ok := parseAmount(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseAmount(%q): ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if amt.StringFixed(2) != tt.amount {
				t.Errorf("amount: got %s, want %s", amt.StringFixed(2), tt.amount)
			}
			if txnType != tt.txnType {
				t.Errorf("type: got %q, want %q", txnType, tt.txnType)
			}
		})
	}
}

func TestParseAmountCreditOverridesDebitMarker(t *testing.T) {
	// A token carrying both markers resolves to Credit: the credit
	// check looks for marker presence, not ordering.
	for _, input := range []string{"1,000.00 Dr Cr", "1,000.00 Cr Dr", "CR 1,000.00 Dr"} {
		t.Run(input, func(t *testing.T) {
			_, txnType, ok := parseAmount(input)
			if !ok {
				t.Fatalf("parseAmount(%q): expected ok", input)
			}
			if txnType != models.Credit {
				t.Errorf("got %q, want %q", txnType, models.Credit)
			}
		})
	}
}

func TestIsDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"15/03/24", true},
		{"15/03/2024", true},
		{"15-03-24", true},
		{"12-Jan-2023", true},
		{"01/Feb/24", true},
		{"15/03/24 UPI PAYMENT", true}, // anchored at start, not full-match
		{"Opening Balance", false},
		{"1/3/24", false}, // day must be two digits
		{"15.03.24", false},
		{"", false},
		{"PAYMENT 15/03/24", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := isDate(tt.input); got != tt.expected {
				t.Errorf("isDate(%q): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeOCRLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"19,720; 15", "19,720.15"},
		{"1,234:56", "1,234.56"},
		{"19,720.15:", "19,720.15"},
		{"500.00 NA", "500.00"},
		{"15/03/24 UPI 500.00", "15/03/24 UPI 500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeOCRLine(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
