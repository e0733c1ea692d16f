package extractor

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// statementTexts lays out a three-column statement fragment the way a
// PDF content stream delivers it: positioned pieces, unordered.
func statementTexts() []pdf.Text {
	return []pdf.Text{
		// Header row at y=700.
		{X: 40, Y: 700, S: "Date"},
		{X: 120, Y: 700, S: "Narration"},
		{X: 400, Y: 700, S: "Amount"},
		// First transaction at y=680, narration split into two pieces
		// within the snap tolerance of each other.
		{X: 40, Y: 680, S: "15/03/24"},
		{X: 120, Y: 680, S: "UPI"},
		{X: 122, Y: 679, S: "PAYMENT"},
		{X: 400, Y: 680, S: "1,234.56 Dr"},
		// Second transaction at y=660, no narration piece at x=120.
		{X: 40, Y: 660, S: "16/03/24"},
		{X: 400, Y: 660, S: "50,000.00 Cr"},
	}
}

func TestDetectTable(t *testing.T) {
	table := detectTable(statementTexts(), DefaultTableConfig())
	if table == nil {
		t.Fatal("expected a table")
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %v", len(table.Rows), table.Rows)
	}

	header := table.Rows[0]
	if header[0] != "Date" || header[len(header)-1] != "Amount" {
		t.Errorf("unexpected header row: %v", header)
	}

	first := table.Rows[1]
	if first[0] != "15/03/24" {
		t.Errorf("row 1 date cell: got %q", first[0])
	}
	if first[1] != "UPI PAYMENT" {
		t.Errorf("row 1 narration cell: got %q", first[1])
	}
	if first[len(first)-1] != "1,234.56 Dr" {
		t.Errorf("row 1 amount cell: got %q", first[len(first)-1])
	}

	second := table.Rows[2]
	if second[0] != "16/03/24" {
		t.Errorf("row 2 date cell: got %q", second[0])
	}
	if second[1] != "" {
		t.Errorf("row 2 narration cell should be empty, got %q", second[1])
	}
	if second[len(second)-1] != "50,000.00 Cr" {
		t.Errorf("row 2 amount cell: got %q", second[len(second)-1])
	}
}

func TestDetectTableEmptyInput(t *testing.T) {
	if table := detectTable(nil, DefaultTableConfig()); table != nil {
		t.Errorf("expected nil table, got %v", table)
	}
	blanks := []pdf.Text{{X: 10, Y: 10, S: "  "}}
	if table := detectTable(blanks, DefaultTableConfig()); table != nil {
		t.Errorf("expected nil table for blank-only input, got %v", table)
	}
}

func TestClusterRows(t *testing.T) {
	words := []word{
		{x: 10, y: 100, s: "a"},
		{x: 50, y: 98, s: "b"},  // within snap tolerance of y=100
		{x: 10, y: 80, s: "c"},  // separate row
		{x: 5, y: 79.5, s: "d"}, // same row as c, further left
	}

	rows := clusterRows(words, 4)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0].s != "a" || rows[0][1].s != "b" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	// Within a row, words are ordered left to right.
	if rows[1][0].s != "d" || rows[1][1].s != "c" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestColumnEdges(t *testing.T) {
	rows := [][]word{
		{{x: 40, s: "a"}, {x: 120, s: "b"}, {x: 400, s: "c"}},
		{{x: 42, s: "d"}, {x: 400, s: "e"}}, // x=42 snaps onto the 40 edge
	}
	cfg := DefaultTableConfig()

	edges := columnEdges(rows, cfg)
	if len(edges) != 3 {
		t.Fatalf("expected 3 column edges, got %d: %v", len(edges), edges)
	}
	if edges[0] != 40 || edges[1] != 120 || edges[2] != 400 {
		t.Errorf("unexpected edges: %v", edges)
	}
}

func TestDefaultTableConfig(t *testing.T) {
	cfg := DefaultTableConfig()
	if cfg.Strategy != StrategyText {
		t.Errorf("strategy: got %q, want %q", cfg.Strategy, StrategyText)
	}
	if cfg.SnapTolerance != 4 {
		t.Errorf("snap tolerance: got %v, want 4", cfg.SnapTolerance)
	}
}
