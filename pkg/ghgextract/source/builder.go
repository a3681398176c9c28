package source

import (
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// documentBuilder synthesizes a document text and the segments pointing into
// it for backends that produce plain cell strings.
type documentBuilder struct {
	text  strings.Builder
	pages []models.Page
}

func (b *documentBuilder) cell(text string) models.CellLayout {
	if text == "" {
		return models.CellLayout{}
	}
	start := b.text.Len()
	b.text.WriteString(text)
	end := b.text.Len()
	b.text.WriteByte('\n')
	return models.CellLayout{Segments: []models.TextSegment{{Start: start, End: end}}}
}

func (b *documentBuilder) row(texts []string) models.RowLayout {
	r := models.RowLayout{Cells: make([]models.CellLayout, len(texts))}
	for i, t := range texts {
		r.Cells[i] = b.cell(t)
	}
	return r
}

// table lays out a grid whose first row is the header row.
func (b *documentBuilder) table(rows [][]string) models.TableLayout {
	var t models.TableLayout
	for i, r := range rows {
		if i == 0 {
			t.HeaderRows = append(t.HeaderRows, b.row(r))
			continue
		}
		t.BodyRows = append(t.BodyRows, b.row(r))
	}
	return t
}

func (b *documentBuilder) addPage(number int, tables []models.TableLayout) {
	b.pages = append(b.pages, models.Page{Number: number, Tables: tables})
}

func (b *documentBuilder) document() *models.Document {
	return &models.Document{Text: b.text.String(), Pages: b.pages}
}
