package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// TableDetectionParams holds parameters for sheet table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// XLSXLoader reads workbooks of already-tabulated report data. Each sheet
// becomes a page holding at most one table: the bounding box of its
// non-empty cells, with the first row as header.
type XLSXLoader struct {
	Params TableDetectionParams
}

// NewXLSXLoader creates a loader with default detection parameters.
func NewXLSXLoader() *XLSXLoader {
	return &XLSXLoader{Params: DefaultTableParams()}
}

// Load opens the workbook at path and lays out one page per sheet.
func (l *XLSXLoader) Load(ctx context.Context, path string) (*models.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoPages
	}

	var b documentBuilder
	for i, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}

		var layouts []models.TableLayout
		if grid := DetectTable(rows, l.Params); grid != nil {
			layouts = append(layouts, b.table(grid))
		}
		b.addPage(i+1, layouts)
	}

	return b.document(), nil
}

// DetectTable returns the table-like region of a sheet's rows, cropped to
// its data bounds, or nil when the sheet is too sparse to be a table.
func DetectTable(rows [][]string, params TableDetectionParams) [][]string {
	if len(rows) == 0 {
		return nil
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	grid := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, maxCol-minCol+1)
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			cells[colIdx-minCol] = row[colIdx]
		}
		grid = append(grid, cells)
	}
	return grid
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
