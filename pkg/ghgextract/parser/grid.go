package parser

import (
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// ResolveText concatenates the document text covered by each segment, in
// segment order, and trims surrounding whitespace. Out-of-range or inverted
// segments are clamped to the text rather than rejected.
func ResolveText(text string, segments []models.TextSegment) string {
	if len(segments) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, seg := range segments {
		start := clamp(seg.Start, 0, len(text))
		end := clamp(seg.End, start, len(text))
		sb.WriteString(text[start:end])
	}
	return strings.TrimSpace(sb.String())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ResolveTable resolves every cell of a table layout against the document
// text. Only header row 0 is used; a table without header rows gets no
// column names.
func ResolveTable(text string, layout models.TableLayout) models.Table {
	var table models.Table

	if len(layout.HeaderRows) > 0 {
		header := layout.HeaderRows[0]
		table.Columns = make([]string, len(header.Cells))
		for i, cell := range header.Cells {
			table.Columns[i] = ResolveText(text, cell.Segments)
		}
	}

	table.Rows = make([][]models.Cell, 0, len(layout.BodyRows))
	for _, row := range layout.BodyRows {
		cells := make([]models.Cell, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = models.Cell{
				Text:   ResolveText(text, cell.Segments),
				Column: i,
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	return table
}
