package parser

import (
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// RowMatch is the keyword classification of one body row.
type RowMatch struct {
	// Fields holds the row's non-empty cells paired with their header text.
	Fields []models.Field
	// Keywords holds every keyword matched, field by field, in order.
	Keywords []string
}

// Relevant reports whether any field of the row matched a keyword.
func (m RowMatch) Relevant() bool {
	return len(m.Keywords) > 0
}

// KeywordCategory returns the matched keywords joined with ", ", used as the
// category when the row carries no explicit label.
func (m RowMatch) KeywordCategory() string {
	return strings.Join(m.Keywords, ", ")
}

// BuildFields pairs each non-empty cell with its column's header text. Cells
// are aligned to headers by position; positions past the header row, like
// empty header cells, get models.NoColumnHeader.
func BuildFields(table models.Table, row []models.Cell) []models.Field {
	fields := make([]models.Field, 0, len(row))
	for i, cell := range row {
		if cell.Text == "" {
			continue
		}
		fields = append(fields, models.Field{
			Name:  table.ColumnName(i),
			Value: cell.Text,
		})
	}
	return fields
}

// ClassifyRow builds the row's fields and matches each field value against
// the keyword list.
func ClassifyRow(table models.Table, row []models.Cell, keywords []string) RowMatch {
	m := RowMatch{Fields: BuildFields(table, row)}
	for _, f := range m.Fields {
		m.Keywords = append(m.Keywords, MatchingKeywords(f.Value, keywords)...)
	}
	return m
}
