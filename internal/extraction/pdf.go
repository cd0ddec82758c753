package extraction

import (
	"bytes"
	"sort"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-parser/internal/types"
)

// columnGapPoints is the minimum horizontal jump between text fragments
// on the same visual row that indicates a second column.
const columnGapPoints = 140.0

// ExtractPDF extracts text page by page, preserving reading order across
// detected multi-column layouts and inserting an explicit page-break
// marker between pages.
func ExtractPDF(fileBytes []byte) (*Result, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return nil, &ExtractionError{Format: "pdf", Message: "failed to open document", Cause: err}
	}

	pageCount := reader.NumPage()
	var pages []string
	var columns []int

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			columns = append(columns, 1)
			continue
		}

		texts := page.Content().Text
		pageText, cols := assemblePage(texts)
		pages = append(pages, CleanText(pageText))
		columns = append(columns, cols)
	}

	text := ""
	for i, p := range pages {
		if i > 0 {
			text += types.PageBreakMarker + "\n"
		}
		text += p
		if len(p) > 0 && p[len(p)-1] != '\n' {
			text += "\n"
		}
	}

	return &Result{
		Text: text,
		Structure: &types.DocumentStructure{
			Format:            "pdf",
			OriginalPageCount: pageCount,
			ColumnsDetected:   columns,
		},
	}, nil
}

// assemblePage orders text fragments into reading order. Fragments are
// grouped into rows by Y, rows into columns by X gaps; a two-column page
// reads left column top-to-bottom, then right.
func assemblePage(texts []pdf.Text) (string, int) {
	if len(texts) == 0 {
		return "", 1
	}

	rows := groupRows(texts)
	columns := detectColumns(rows)

	if columns <= 1 {
		return renderRows(rows, nil), 1
	}

	// Split each row's fragments at the column boundary, render the
	// left column first, then the right.
	boundary := columnBoundary(rows)
	left := renderRows(rows, func(x float64) bool { return x < boundary })
	right := renderRows(rows, func(x float64) bool { return x >= boundary })
	return left + "\n" + right, columns
}

type textRow struct {
	y     float64
	texts []pdf.Text
}

// groupRows clusters fragments that share a baseline
func groupRows(texts []pdf.Text) []textRow {
	const yTolerance = 2.0

	sorted := append([]pdf.Text(nil), texts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y // PDF Y grows upward
		}
		return sorted[i].X < sorted[j].X
	})

	var rows []textRow
	for _, t := range sorted {
		if n := len(rows); n > 0 && rows[n-1].y-t.Y < yTolerance {
			rows[n-1].texts = append(rows[n-1].texts, t)
			continue
		}
		rows = append(rows, textRow{y: t.Y, texts: []pdf.Text{t}})
	}
	for i := range rows {
		sort.SliceStable(rows[i].texts, func(a, b int) bool {
			return rows[i].texts[a].X < rows[i].texts[b].X
		})
	}
	return rows
}

// detectColumns reports 2 when enough rows carry a large internal X gap
func detectColumns(rows []textRow) int {
	gapped := 0
	for _, row := range rows {
		for i := 1; i < len(row.texts); i++ {
			if row.texts[i].X-row.texts[i-1].X > columnGapPoints {
				gapped++
				break
			}
		}
	}
	if len(rows) > 0 && gapped*2 >= len(rows) {
		return 2
	}
	return 1
}

// columnBoundary estimates the X position separating two columns
func columnBoundary(rows []textRow) float64 {
	var boundary float64
	n := 0
	for _, row := range rows {
		for i := 1; i < len(row.texts); i++ {
			gap := row.texts[i].X - row.texts[i-1].X
			if gap > columnGapPoints {
				boundary += row.texts[i].X
				n++
				break
			}
		}
	}
	if n == 0 {
		return 0
	}
	return boundary / float64(n)
}

// renderRows joins fragments row by row. filter limits the render to one
// column; nil renders everything.
func renderRows(rows []textRow, filter func(x float64) bool) string {
	const wordGap = 1.5

	var sb bytes.Buffer
	for _, row := range rows {
		wrote := false
		prevEnd := 0.0
		for _, t := range row.texts {
			if filter != nil && !filter(t.X) {
				continue
			}
			// Fragments may be single glyphs; only an X gap wider than
			// normal glyph spacing means a word boundary.
			if wrote && t.X-prevEnd > wordGap {
				sb.WriteByte(' ')
			}
			sb.WriteString(t.S)
			prevEnd = t.X + t.W
			wrote = true
		}
		if wrote {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
