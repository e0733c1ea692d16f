package extractor

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// GeometryStrategy names the method used to infer table boundaries
// from text positioning when the page has no explicit ruling lines.
type GeometryStrategy string

// StrategyText infers row and column edges from the alignment of the
// text itself, the way statements without drawn grids have to be read.
const StrategyText GeometryStrategy = "text"

// TableConfig is an immutable set of geometry-detection settings
// passed into each Tables call. It is never package-level state, so
// concurrent runs with different tolerances cannot interfere.
type TableConfig struct {
	Strategy GeometryStrategy
	// SnapTolerance is the maximum distance, in PDF points, at which
	// text pieces are snapped onto the same row or column edge. Narrow
	// irregular columns need a small value.
	SnapTolerance float64
	// ColumnGap is the minimum horizontal whitespace, in PDF points,
	// treated as a column boundary within a row.
	ColumnGap float64
}

// DefaultTableConfig matches the tolerances tuned for Kotak statement
// layouts: tight snapping for their narrow columns.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Strategy:      StrategyText,
		SnapTolerance: 4,
		ColumnGap:     12,
	}
}

// Table is one detected table: rows of cell strings. Cells that hold
// no text are empty strings, never absent, so every row has one cell
// per detected column.
type Table struct {
	Rows [][]string
}

// Tables runs geometry detection over the page and returns the tables
// found. With the text strategy the whole page body is treated as one
// candidate table; pages without positioned text yield none.
func (d *Document) Tables(pageNum int, cfg TableConfig) (tables []Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			tables, err = nil, nil
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}
	content := page.Content()
	if len(content.Text) == 0 {
		return nil, nil
	}

	t := detectTable(content.Text, cfg)
	if t == nil {
		return nil, nil
	}
	return []Table{*t}, nil
}

type word struct {
	x, y float64
	s    string
}

// detectTable reconstructs a cell grid from positioned text pieces.
// Rows are clusters of pieces whose Y coordinates fall within the snap
// tolerance; column edges are the clustered X start positions seen
// across the whole page, so cells line up vertically even when a row
// leaves some columns blank.
func detectTable(texts []pdf.Text, cfg TableConfig) *Table {
	var words []word
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		words = append(words, word{x: t.X, y: t.Y, s: t.S})
	}
	if len(words) == 0 {
		return nil
	}

	rows := clusterRows(words, cfg.SnapTolerance)
	edges := columnEdges(rows, cfg)

	table := &Table{}
	for _, row := range rows {
		cells := make([]string, len(edges))
		for _, w := range row {
			col := columnIndex(edges, w.x, cfg.SnapTolerance)
			if cells[col] != "" {
				cells[col] += " "
			}
			cells[col] += w.s
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

// clusterRows groups words into rows by Y, top of page first. Words
// within snapTolerance of a row's anchor Y belong to that row; each
// row is then ordered left to right.
func clusterRows(words []word, snapTolerance float64) [][]word {
	sorted := make([]word, len(words))
	copy(sorted, words)
	// PDF Y grows upwards; reading order is descending Y.
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].y != sorted[b].y {
			return sorted[a].y > sorted[b].y
		}
		return sorted[a].x < sorted[b].x
	})

	var rows [][]word
	var current []word
	anchorY := 0.0
	for _, w := range sorted {
		if len(current) == 0 || anchorY-w.y > snapTolerance {
			if len(current) > 0 {
				rows = append(rows, current)
			}
			current = nil
			anchorY = w.y
		}
		current = append(current, w)
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	for _, row := range rows {
		sort.Slice(row, func(a, b int) bool { return row[a].x < row[b].x })
	}
	return rows
}

// columnEdges derives the table's column start positions. Word start
// positions across all rows are merged when closer than the snap
// tolerance; surviving positions separated by at least ColumnGap
// become column edges. Positions closer than the gap collapse into
// the column to their left, which keeps multi-word narrations in one
// cell instead of exploding them across phantom columns.
func columnEdges(rows [][]word, cfg TableConfig) []float64 {
	var xs []float64
	for _, row := range rows {
		for _, w := range row {
			xs = append(xs, w.x)
		}
	}
	sort.Float64s(xs)

	var snapped []float64
	for _, x := range xs {
		if len(snapped) == 0 || x-snapped[len(snapped)-1] > cfg.SnapTolerance {
			snapped = append(snapped, x)
		}
	}

	edges := []float64{snapped[0]}
	for _, x := range snapped[1:] {
		if x-edges[len(edges)-1] >= cfg.ColumnGap {
			edges = append(edges, x)
		}
	}
	return edges
}

// columnIndex finds the column a word starting at x belongs to: the
// rightmost edge at or left of x, with snap tolerance for words that
// start slightly before their column edge.
func columnIndex(edges []float64, x, snapTolerance float64) int {
	idx := 0
	for i, edge := range edges {
		if x >= edge-snapTolerance {
			idx = i
		}
	}
	return idx
}
