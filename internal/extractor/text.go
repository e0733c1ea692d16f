package extractor

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextPages returns the plain text of each page, in page order. It
// tries the library's extraction methods from best layout preservation
// downwards, accepting the first result that passes the readability
// gate. Documents opened from a file additionally fall back to
// pdftotext and then OCR for custom font encodings and scanned pages.
func (d *Document) TextPages() ([]string, error) {
	pages := d.tryMethod(d.extractByRow)
	if IsReadableText(pages) {
		return pages, nil
	}

	pages = d.tryMethod(d.extractByContent)
	if IsReadableText(pages) {
		return pages, nil
	}

	pages = d.tryMethod(d.extractByPlainText)
	if IsReadableText(pages) {
		return pages, nil
	}

	if d.path != "" {
		popplerPages, err := extractWithPdftotext(d.path, d.passphrase)
		if err == nil && IsReadableText(popplerPages) {
			return popplerPages, nil
		}

		ocrPages, err := extractWithOCR(d.path, d.passphrase)
		if err == nil && IsReadableText(ocrPages) {
			return ocrPages, nil
		}
	}

	return nil, fmt.Errorf("no readable text could be extracted: the document may be image-based or use font encodings that cannot be decoded")
}

// tryMethod shields callers from panics inside the pdf library, which
// crashes on some malformed documents.
func (d *Document) tryMethod(method func() []string) (pages []string) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
		}
	}()
	return method()
}

// extractByRow uses the library's row grouping, which preserves the
// column layout of most digitally produced statements.
func (d *Document) extractByRow() []string {
	var pages []string
	for i := 1; i <= d.reader.NumPage(); i++ {
		page := d.reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByContent reconstructs lines from raw positioned text pieces:
// pieces are bucketed into rows by rounded Y, rows ordered top to
// bottom (PDF Y grows upwards), pieces within a row ordered by X with
// wide gaps rendered as column separators.
func (d *Document) extractByContent() []string {
	var pages []string
	for i := 1; i <= d.reader.NumPage(); i++ {
		page := d.reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type piece struct {
			x float64
			s string
		}
		rowMap := make(map[int][]piece)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], piece{x: t.X, s: t.S})
		}

		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		var lines []string
		for _, y := range yKeys {
			pieces := rowMap[y]
			sort.Slice(pieces, func(a, b int) bool {
				return pieces[a].x < pieces[b].x
			})

			var parts []string
			var prevX float64
			for j, p := range pieces {
				if j > 0 && p.x-prevX > 15 {
					parts = append(parts, "  ")
				}
				parts = append(parts, p.s)
				prevX = p.x
			}
			line := strings.TrimSpace(strings.Join(parts, ""))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByPlainText uses per-page plain text extraction with the
// page's font maps. Layout is not preserved, which is still enough for
// line-oriented parsing of simple statements.
func (d *Document) extractByPlainText() []string {
	var pages []string
	for i := 1; i <= d.reader.NumPage(); i++ {
		page := d.reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font)
		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}
