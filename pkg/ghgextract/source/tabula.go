package source

import (
	"context"
	"fmt"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/tables"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// LocalLoader detects tables in text-layer PDFs on the local machine, using
// the positions of each page's text fragments.
type LocalLoader struct {
	detector tables.Detector
}

// NewLocalLoader creates a loader backed by the geometric table detector.
func NewLocalLoader() *LocalLoader {
	return &LocalLoader{detector: tables.NewGeometricDetector()}
}

// Load extracts fragments page by page and lays out every detected table.
// The first row of a detected table is taken as its header row.
func (l *LocalLoader) Load(ctx context.Context, path string) (*models.Document, error) {
	ext := tabula.Open(path)
	count, err := ext.PageCount()
	ext.Close()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if count == 0 {
		return nil, ErrNoPages
	}

	var b documentBuilder
	for p := 1; p <= count; p++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		grids, err := l.pageTables(path, p)
		if err != nil {
			return nil, err
		}

		layouts := make([]models.TableLayout, 0, len(grids))
		for _, g := range grids {
			layouts = append(layouts, b.table(g))
		}
		b.addPage(p, layouts)
	}

	return b.document(), nil
}

func (l *LocalLoader) pageTables(path string, pageNum int) ([][][]string, error) {
	frags, _, err := tabula.Open(path).Pages(pageNum).Fragments()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNum, err)
	}

	page := model.NewPage(0, 0)
	page.Number = pageNum
	for _, f := range frags {
		page.RawText = append(page.RawText, model.TextFragment{
			Text:     f.Text,
			BBox:     model.NewBBox(f.X, f.Y, f.Width, f.Height),
			FontSize: f.FontSize,
			FontName: f.FontName,
		})
	}

	detected, err := l.detector.Detect(page)
	if err != nil {
		return nil, fmt.Errorf("page %d: detect tables: %w", pageNum, err)
	}

	grids := make([][][]string, 0, len(detected))
	for _, t := range detected {
		grids = append(grids, tableGrid(t))
	}
	return grids, nil
}

func tableGrid(t *model.Table) [][]string {
	grid := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		grid[i] = make([]string, len(row))
		for j, c := range row {
			grid[i][j] = c.Text
		}
	}
	return grid
}
