package ghgextract

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/parser"
)

// Loader turns an input file into a document with detected table layouts.
type Loader interface {
	Load(ctx context.Context, path string) (*models.Document, error)
}

// SourceFromPath derives sector and company from a .../<sector>/<company>.pdf path.
func SourceFromPath(path string) models.Source {
	name := filepath.Base(path)
	company := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.Index(name, ".pdf"); i >= 0 {
		company = name[:i]
	}
	return models.Source{
		Sector:  filepath.Base(filepath.Dir(path)),
		Company: company,
	}
}

// Extract loads a single report and extracts its emission records.
// The returned result is never nil; on failure its Err matches the error.
func Extract(ctx context.Context, path string, loader Loader, opts Options) (*models.DocumentResult, error) {
	result := &models.DocumentResult{Path: path, Source: SourceFromPath(path)}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			err = ErrFileNotFound
		}
		result.Err = NewProcessingError(path, StageStat, err)
		return result, result.Err
	}

	doc, err := loader.Load(ctx, path)
	if err != nil {
		result.Err = NewProcessingError(path, StageLoad, err)
		return result, result.Err
	}

	extracted := ExtractDocument(doc, result.Source, opts)
	result.Records = extracted.Records
	result.Diagnostics = extracted.Diagnostics
	return result, nil
}

// ExtractDocument runs table extraction over an already-loaded document.
// It performs no I/O beyond logging diagnostics.
func ExtractDocument(doc *models.Document, src models.Source, opts Options) models.DocumentResult {
	result := models.DocumentResult{Source: src}
	if doc == nil {
		return result
	}

	logger := opts.logger().With("sector", src.Sector, "company", src.Company)
	cfg := opts.scanConfig()

	for pageIdx, page := range doc.Pages {
		pageNum := page.Number
		if pageNum == 0 {
			pageNum = pageIdx + 1
		}

		if len(page.Tables) == 0 {
			logger.Info("no tables", "page", pageNum)
			result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
				Kind: models.DiagNoTables, Page: pageNum, Table: -1, Row: -1,
			})
			continue
		}

		relevant := 0
		for tableIdx, layout := range page.Tables {
			table := parser.ResolveTable(doc.Text, layout)
			if opts.DumpTables {
				dumpTable(logger, pageNum, tableIdx, table)
			}

			scan := parser.ScanTable(table, src, cfg)
			relevant += scan.RelevantRows
			result.Records = append(result.Records, scan.Records...)

			for _, d := range scan.Diagnostics {
				d.Page = pageNum
				d.Table = tableIdx
				logDiagnostic(logger, d)
				result.Diagnostics = append(result.Diagnostics, d)
			}
		}

		if relevant == 0 {
			logger.Info("no keywords in table", "page", pageNum, "tables", len(page.Tables))
			result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
				Kind: models.DiagNoKeywords, Page: pageNum, Table: -1, Row: -1,
			})
		}
	}

	return result
}

func logDiagnostic(logger *slog.Logger, d models.Diagnostic) {
	switch d.Kind {
	case models.DiagNumericWithoutYear:
		logger.Warn("has numeric value but no year",
			"page", d.Page, "table", d.Table, "row", d.Row, "fields", d.Fields)
	case models.DiagNonNumericValue:
		logger.Info("non numeric value",
			"page", d.Page, "table", d.Table, "row", d.Row, "fields", d.Fields)
	}
}

func dumpTable(logger *slog.Logger, page, index int, table models.Table) {
	rows := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		texts := make([]string, len(row))
		for j, c := range row {
			texts[j] = c.Text
		}
		rows[i] = strings.Join(texts, " | ")
	}
	logger.Debug("table",
		"page", page,
		"table", index,
		"columns", strings.Join(table.Columns, " | "),
		"rows", rows,
	)
}
