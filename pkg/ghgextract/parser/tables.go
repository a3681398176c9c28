package parser

import (
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// ScanConfig holds the per-run parameters of a table scan.
type ScanConfig struct {
	// Keywords are the lower-cased keywords that make a row relevant.
	Keywords []string
	// IncludeUnit enables unit extraction from header cells.
	IncludeUnit bool
	// ComposeCategory uses the matched keywords as the fallback category;
	// otherwise models.NoCategory is used.
	ComposeCategory bool
}

// TableScan is the outcome of scanning one table.
type TableScan struct {
	// Unit is the table's unit, or empty when unit extraction is disabled.
	Unit string
	// RelevantRows counts rows that matched at least one keyword.
	RelevantRows int
	// Records holds the emission records of all qualifying rows.
	Records []models.EmissionRecord
	// Diagnostics holds row-level diagnostics. Page and Table are left zero
	// for the caller to fill in.
	Diagnostics []models.Diagnostic
}

// ScanTable runs the row classifier, resolver and normalizer over every body
// row of a table.
func ScanTable(table models.Table, src models.Source, cfg ScanConfig) TableScan {
	var scan TableScan
	if cfg.IncludeUnit {
		scan.Unit = TableUnit(table.Columns)
	}

	for rowIdx, row := range table.Rows {
		match := ClassifyRow(table, row, cfg.Keywords)
		if !match.Relevant() {
			continue
		}
		scan.RelevantRows++

		fallback := models.NoCategory
		if cfg.ComposeCategory {
			fallback = match.KeywordCategory()
		}

		res := ResolveRow(match.Fields, fallback)
		switch {
		case res.Qualifies():
			scan.Records = append(scan.Records, Normalize(src, res, scan.Unit)...)
		case res.HasNumeric:
			scan.Diagnostics = append(scan.Diagnostics, models.Diagnostic{
				Kind:   models.DiagNumericWithoutYear,
				Row:    rowIdx,
				Fields: match.Fields,
			})
		default:
			scan.Diagnostics = append(scan.Diagnostics, models.Diagnostic{
				Kind:   models.DiagNonNumericValue,
				Row:    rowIdx,
				Fields: match.Fields,
			})
		}
	}

	return scan
}
