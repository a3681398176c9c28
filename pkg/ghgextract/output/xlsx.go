package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/parser"
)

// RecordsSheet is the name of the worksheet holding exported records.
const RecordsSheet = "Emissions"

var xlsxHeader = []string{"Sector", "Company", "Category", "Year", "Value", "Unit", "Parsed Value"}

// WriteXLSX writes records to a workbook with one row per record. The raw
// value is kept as text; a parsed copy is added when the value is numeric.
func WriteXLSX(w io.Writer, records []models.EmissionRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, h := range xlsxHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(RecordsSheet, cell, h); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(xlsxHeader), 1)
	if err := f.SetCellStyle(RecordsSheet, "A1", lastCol, style); err != nil {
		return err
	}

	for i, r := range records {
		row := i + 2
		values := []string{r.Sector, r.Company, r.Category, r.Year, r.Value, r.Unit}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellStr(RecordsSheet, cell, v); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		}
		if n, ok := parser.ParseNumber(r.Value); ok {
			cell, _ := excelize.CoordinatesToCellName(len(xlsxHeader), row)
			if err := f.SetCellFloat(RecordsSheet, cell, n, -1, 64); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		}
	}

	if err := f.SetPanes(RecordsSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return err
	}

	return f.Write(w)
}
