package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

var (
	testSource   = models.Source{Sector: "Chemicals", Company: "Dow"}
	standardScan = ScanConfig{Keywords: []string{"scope 1", "scope 2", "scope 3"}, IncludeUnit: true, ComposeCategory: true}
	basicScan    = ScanConfig{Keywords: []string{"scope 1", "scope 2", "scope 3"}}
)

func table(columns []string, rows ...[]string) models.Table {
	t := models.Table{Columns: columns}
	for _, r := range rows {
		t.Rows = append(t.Rows, cells(r...))
	}
	return t
}

func TestScanTableEmitsOneRecordPerYear(t *testing.T) {
	tbl := table([]string{"Category", "2018", "2019"},
		[]string{"Scope 1 Emissions", "120,000", "135,500"},
	)

	scan := ScanTable(tbl, testSource, ScanConfig{Keywords: []string{"scope 1"}, IncludeUnit: true, ComposeCategory: true})

	expected := []models.EmissionRecord{
		{Sector: "Chemicals", Company: "Dow", Category: "scope 1", Year: "2018", Value: "120,000", Unit: "N/A"},
		{Sector: "Chemicals", Company: "Dow", Category: "scope 1", Year: "2019", Value: "135,500", Unit: "N/A"},
	}
	if !reflect.DeepEqual(scan.Records, expected) {
		t.Errorf("Records = %+v, expected %+v", scan.Records, expected)
	}
	if scan.RelevantRows != 1 {
		t.Errorf("RelevantRows = %d, expected 1", scan.RelevantRows)
	}
	if len(scan.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %+v, expected none", scan.Diagnostics)
	}
}

func TestScanTableUnlabelledFirstColumn(t *testing.T) {
	tbl := table([]string{"", "2018", "2019 (Metric tons CO2e)"},
		[]string{"Scope 1\nDirect", "10", "11"},
		[]string{"Scope 2 (market)", "20", "21"},
	)

	scan := ScanTable(tbl, testSource, standardScan)

	if len(scan.Records) != 4 {
		t.Fatalf("Expected 4 records, got %d: %+v", len(scan.Records), scan.Records)
	}
	if scan.Records[0].Category != "Scope 1 Direct" {
		t.Errorf("Records[0].Category = %q, expected %q", scan.Records[0].Category, "Scope 1 Direct")
	}
	if scan.Records[2].Category != "Scope 2 (market)" {
		t.Errorf("Records[2].Category = %q, expected %q", scan.Records[2].Category, "Scope 2 (market)")
	}
	for _, r := range scan.Records {
		if r.Unit != "Metric tons CO2e)" {
			t.Errorf("Unit = %q, expected %q", r.Unit, "Metric tons CO2e)")
		}
	}
	if scan.Records[1].Year != "2019 (Metric tons CO2e)" {
		t.Errorf("Year = %q, expected the literal header", scan.Records[1].Year)
	}
}

func TestScanTableEmptyHeader(t *testing.T) {
	tbl := table([]string{"", "", ""},
		[]string{"Scope 1", "100", "200"},
	)

	scan := ScanTable(tbl, testSource, standardScan)

	if len(scan.Records) != 0 {
		t.Errorf("Expected no records, got %+v", scan.Records)
	}
	if scan.RelevantRows != 1 {
		t.Errorf("RelevantRows = %d, expected 1", scan.RelevantRows)
	}
	if len(scan.Diagnostics) != 1 || scan.Diagnostics[0].Kind != models.DiagNumericWithoutYear {
		t.Fatalf("Diagnostics = %+v", scan.Diagnostics)
	}
	if len(scan.Diagnostics[0].Fields) != 3 {
		t.Errorf("Expected full field list in diagnostic, got %+v", scan.Diagnostics[0].Fields)
	}
}

func TestScanTableDiagnostics(t *testing.T) {
	tbl := table([]string{"Category", "Total", "2019"},
		[]string{"Energy", "5", "6"},
		[]string{"Scope 1", "500", ""},
		[]string{"Scope 3", "see note", "not reported"},
	)

	scan := ScanTable(tbl, testSource, standardScan)

	if len(scan.Records) != 0 {
		t.Errorf("Expected no records, got %+v", scan.Records)
	}
	if scan.RelevantRows != 2 {
		t.Errorf("RelevantRows = %d, expected 2", scan.RelevantRows)
	}

	expected := []struct {
		kind models.DiagnosticKind
		row  int
	}{
		{models.DiagNumericWithoutYear, 1},
		{models.DiagNonNumericValue, 2},
	}
	if len(scan.Diagnostics) != len(expected) {
		t.Fatalf("Diagnostics = %+v", scan.Diagnostics)
	}
	for i, e := range expected {
		if scan.Diagnostics[i].Kind != e.kind || scan.Diagnostics[i].Row != e.row {
			t.Errorf("Diagnostics[%d] = %+v, expected kind %s row %d", i, scan.Diagnostics[i], e.kind, e.row)
		}
	}
}

func TestScanTableBasicMode(t *testing.T) {
	tbl := table([]string{"Category", "FY 2019 (MTCO2e)"},
		[]string{"Scope 1 and Scope 2", "42"},
	)

	scan := ScanTable(tbl, testSource, basicScan)

	if scan.Unit != "" {
		t.Errorf("Unit = %q, expected empty", scan.Unit)
	}
	if len(scan.Records) != 1 {
		t.Fatalf("Expected 1 record, got %+v", scan.Records)
	}
	if scan.Records[0].Category != models.NoCategory || scan.Records[0].Unit != "" {
		t.Errorf("Record = %+v", scan.Records[0])
	}
}

func TestScanTableComposedCategory(t *testing.T) {
	tbl := table([]string{"Category", "2020"},
		[]string{"Scope 1 and Scope 2", "42"},
	)

	scan := ScanTable(tbl, testSource, standardScan)

	if len(scan.Records) != 1 || scan.Records[0].Category != "scope 1, scope 2" {
		t.Errorf("Records = %+v", scan.Records)
	}
}

func TestScanTableMalformed(t *testing.T) {
	tests := []struct {
		name  string
		table models.Table
	}{
		{"empty", models.Table{}},
		{"header only", table([]string{"Category", "2019"})},
		{"no header", table(nil, []string{"Scope 1", "1"})},
		{"long row", table([]string{"2019"}, []string{"1", "Scope 1", "x", "y"})},
		{"empty cells", table([]string{"a", "b"}, []string{"", ""})},
	}

	for _, tt := range tests {
		scan := ScanTable(tt.table, testSource, standardScan)
		if len(scan.Records) > 1 {
			t.Errorf("%s: unexpected records %+v", tt.name, scan.Records)
		}
	}
}
