package models

import "github.com/shopspring/decimal"

// TxnType is the direction of a transaction.
type TxnType string

const (
	Debit  TxnType = "Dr"
	Credit TxnType = "Cr"
)

// Transaction represents a single statement line item. Date is kept as
// the raw text found in the document — source formats vary (DD/MM/YY,
// DD-MMM-YYYY) and nothing downstream needs a calendar type. Amount is
// always the absolute magnitude; Type carries the direction.
type Transaction struct {
	Date      string          `json:"date"`
	Narration string          `json:"narration"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TxnType         `json:"type"`
}

// StatementTable is an ordered sequence of transactions in document
// reading order: page order, then row/line order within a page.
// Duplicates are preserved as-is.
type StatementTable []Transaction

// TotalDebit sums the amounts of all debit transactions.
func (t StatementTable) TotalDebit() decimal.Decimal {
	return t.totalByType(Debit)
}

// TotalCredit sums the amounts of all credit transactions.
func (t StatementTable) TotalCredit() decimal.Decimal {
	return t.totalByType(Credit)
}

func (t StatementTable) totalByType(typ TxnType) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range t {
		if txn.Type == typ {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum
}

// Profile selects the extraction strategy for a document layout.
type Profile string

const (
	// ProfileKotak uses table-oriented geometry detection, tuned for
	// Kotak Mahindra statements.
	ProfileKotak Profile = "kotak"
	// ProfileGeneric is the line-oriented fallback for unknown banks.
	ProfileGeneric Profile = "generic"
)

// Statement holds the extraction result for one document.
type Statement struct {
	Profile       Profile        `json:"profile"`
	AccountNumber string         `json:"accountNumber,omitempty"`
	Period        string         `json:"period,omitempty"`
	Transactions  StatementTable `json:"transactions"`
}
