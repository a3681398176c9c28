package ghgextract

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// FindReports returns the files matching <dir>/<sector>/*<ext>, sorted.
// Only the two-level sector/company layout is searched.
func FindReports(dir, ext string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*", "*"+ext))
	if err != nil {
		return nil, fmt.Errorf("find reports in %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// SectorsFromReports returns the distinct sector names of the given report
// paths, sorted.
func SectorsFromReports(paths []string) []string {
	seen := make(map[string]bool)
	var sectors []string
	for _, p := range paths {
		s := SourceFromPath(p).Sector
		if !seen[s] {
			seen[s] = true
			sectors = append(sectors, s)
		}
	}
	sort.Strings(sectors)
	return sectors
}

// BatchSummary counts the outcomes of a batch run.
type BatchSummary struct {
	Documents   int
	Failed      int
	Records     int
	Diagnostics int
}

// Summarize tallies a set of document results.
func Summarize(results []models.DocumentResult) BatchSummary {
	s := BatchSummary{Documents: len(results)}
	for i := range results {
		if results[i].Failed() {
			s.Failed++
		}
		s.Records += len(results[i].Records)
		s.Diagnostics += len(results[i].Diagnostics)
	}
	return s
}

// ProcessAll extracts every report with at most workers documents in flight.
// Documents are independent: a failure is recorded on that document's result
// and logged, and never stops the others. Results keep the order of paths.
func ProcessAll(ctx context.Context, paths []string, loader Loader, opts Options, workers int) []models.DocumentResult {
	if workers < 1 {
		workers = 1
	}
	logger := opts.logger()
	results := make([]models.DocumentResult, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = models.DocumentResult{
					Path:   path,
					Source: SourceFromPath(path),
					Err:    NewProcessingError(path, StageLoad, err),
				}
				return nil
			}

			logger.Info("processing", "path", path)
			res, err := Extract(ctx, path, loader, opts)
			if err != nil {
				logger.Error("document failed", "path", path, "error", err)
			} else {
				logger.Info("document done", "path", path,
					"records", len(res.Records), "diagnostics", len(res.Diagnostics))
			}
			results[i] = *res
			return nil
		})
	}
	_ = g.Wait()

	return results
}
