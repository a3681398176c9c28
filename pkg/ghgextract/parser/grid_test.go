package parser

import (
	"testing"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

func TestResolveText(t *testing.T) {
	text := "Scope 1 Emissions\n120,000\n"

	tests := []struct {
		name     string
		segments []models.TextSegment
		expected string
	}{
		{"no segments", nil, ""},
		{"single", []models.TextSegment{{Start: 18, End: 26}}, "120,000"},
		{"concatenated", []models.TextSegment{{Start: 0, End: 8}, {Start: 8, End: 18}}, "Scope 1 Emissions"},
		{"trimmed", []models.TextSegment{{Start: 17, End: 26}}, "120,000"},
		{"end past text", []models.TextSegment{{Start: 18, End: 1000}}, "120,000"},
		{"negative start", []models.TextSegment{{Start: -5, End: 5}}, "Scope"},
		{"inverted", []models.TextSegment{{Start: 10, End: 3}}, ""},
		{"start past text", []models.TextSegment{{Start: 500, End: 600}}, ""},
	}

	for _, tt := range tests {
		result := ResolveText(text, tt.segments)
		if result != tt.expected {
			t.Errorf("%s: ResolveText() = %q, expected %q", tt.name, result, tt.expected)
		}
	}
}

// layoutFromStrings builds a document text and table layout whose cells
// resolve to the given strings.
func layoutFromStrings(header []string, rows ...[]string) (string, models.TableLayout) {
	var text string
	cell := func(s string) models.CellLayout {
		start := len(text)
		text += s + "\n"
		if s == "" {
			return models.CellLayout{}
		}
		return models.CellLayout{Segments: []models.TextSegment{{Start: start, End: start + len(s)}}}
	}

	var layout models.TableLayout
	if header != nil {
		var hr models.RowLayout
		for _, h := range header {
			hr.Cells = append(hr.Cells, cell(h))
		}
		layout.HeaderRows = append(layout.HeaderRows, hr)
	}
	for _, r := range rows {
		var br models.RowLayout
		for _, c := range r {
			br.Cells = append(br.Cells, cell(c))
		}
		layout.BodyRows = append(layout.BodyRows, br)
	}
	return text, layout
}

func TestResolveTable(t *testing.T) {
	text, layout := layoutFromStrings(
		[]string{"Category", "2018", "2019"},
		[]string{"Scope 1 Emissions", "120,000", "135,500"},
		[]string{"Scope 2", "", "7"},
	)
	// A second header row is ignored.
	layout.HeaderRows = append(layout.HeaderRows, layout.BodyRows[1])

	table := ResolveTable(text, layout)

	if len(table.Columns) != 3 || table.Columns[0] != "Category" || table.Columns[2] != "2019" {
		t.Fatalf("Columns = %q", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][1].Text != "120,000" || table.Rows[0][1].Column != 1 {
		t.Errorf("Rows[0][1] = %+v", table.Rows[0][1])
	}
	if table.Rows[1][1].Text != "" {
		t.Errorf("Expected empty cell, got %q", table.Rows[1][1].Text)
	}
}

func TestResolveTableWithoutHeader(t *testing.T) {
	text, layout := layoutFromStrings(nil, []string{"Scope 1", "10"})

	table := ResolveTable(text, layout)

	if len(table.Columns) != 0 {
		t.Errorf("Expected no columns, got %q", table.Columns)
	}
	if got := table.ColumnName(0); got != models.NoColumnHeader {
		t.Errorf("ColumnName(0) = %q, expected %q", got, models.NoColumnHeader)
	}
}
