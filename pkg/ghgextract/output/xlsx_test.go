package output

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

func TestWriteXLSX(t *testing.T) {
	notMeasured := sampleRecord
	notMeasured.Year = "2020"
	notMeasured.Value = "Not measured"

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, []models.EmissionRecord{sampleRecord, notMeasured}); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "Sector"},
		{"C2", "Scope 1"},
		{"E2", "135,500"},
		{"F2", "Metric tons CO2e"},
		{"G2", "135500"},
		{"E3", "Not measured"},
		{"G3", ""},
	}

	for _, tt := range tests {
		got, err := f.GetCellValue(RecordsSheet, tt.cell)
		if err != nil {
			t.Errorf("GetCellValue(%q) failed: %v", tt.cell, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("GetCellValue(%q) = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}
