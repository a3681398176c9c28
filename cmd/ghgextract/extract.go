package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/config"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/output"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/source"
)

var (
	inputDir    string
	backend     string
	projectID   string
	processorID string
	location    string
	keywords    string
	mode        string
	workers     int
	outputPath  string
	format      string
	dumpTables  bool
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [FILE...]",
		Short: "Extract emission records from reports",
		Long: `extract processes every <input-dir>/<sector>/<company> report, or just
the given files, and writes one record per emissions figure found.`,
		RunE: runExtract,
	}

	cmd.Flags().StringVar(&inputDir, "input-dir", "", "Root directory of <sector>/<company> reports")
	cmd.Flags().StringVar(&backend, "backend", "", "Backend: docai, docai-json, local, xlsx")
	cmd.Flags().StringVar(&projectID, "project-id", "", "Document AI project ID")
	cmd.Flags().StringVar(&processorID, "processor-id", "", "Document AI processor ID")
	cmd.Flags().StringVar(&location, "location", "", "Document AI processor location")
	cmd.Flags().StringVar(&keywords, "keywords", "", "Comma-separated row keywords")
	cmd.Flags().StringVar(&mode, "mode", "", "Extraction mode: basic, standard")
	cmd.Flags().IntVar(&workers, "workers", 0, "Documents processed concurrently")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "tsv", "Output format: tsv, xlsx")
	cmd.Flags().BoolVar(&dumpTables, "dump-tables", false, "Log every resolved table at debug level")

	return cmd
}

// applyExtractFlags overrides configuration with explicitly set flags.
func applyExtractFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir = inputDir
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("project-id") {
		cfg.DocAI.ProjectID = projectID
	}
	if flags.Changed("processor-id") {
		cfg.DocAI.ProcessorID = processorID
	}
	if flags.Changed("location") {
		cfg.DocAI.Location = location
	}
	if flags.Changed("keywords") {
		cfg.Keywords = strings.Split(keywords, ",")
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	applyExtractFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if format != "tsv" && format != "xlsx" {
		return fmt.Errorf("invalid format: %s (must be tsv or xlsx)", format)
	}
	if format == "xlsx" && outputPath == "" {
		return fmt.Errorf("--output is required for xlsx format")
	}

	opts, err := extractOptions(dumpTables)
	if err != nil {
		return err
	}
	logger := slog.Default().With("run_id", uuid.NewString())
	opts.Logger = logger

	paths := args
	if len(paths) == 0 {
		if cfg.InputDir == "" {
			return fmt.Errorf("--input-dir or FILE arguments are required")
		}
		paths, err = ghgextract.FindReports(cfg.InputDir, reportExt(cfg.Backend))
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("%w in %s", ghgextract.ErrNoReports, cfg.InputDir)
		}
	}

	ctx, stop := signalContext()
	defer stop()

	loader, closeLoader, err := newLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	logger.Info("run started", "backend", cfg.Backend, "mode", opts.Mode,
		"documents", len(paths), "workers", cfg.Workers)

	results := ghgextract.ProcessAll(ctx, paths, loader, opts, cfg.Workers)

	var records []models.EmissionRecord
	for i := range results {
		records = append(records, results[i].Records...)
	}
	if err := writeRecords(records, opts.ShouldIncludeUnit()); err != nil {
		return err
	}

	summary := ghgextract.Summarize(results)
	logger.Info("run finished",
		"documents", summary.Documents,
		"documents_failed", summary.Failed,
		"records", summary.Records,
		"diagnostics", summary.Diagnostics,
	)
	return nil
}

func writeRecords(records []models.EmissionRecord, includeUnit bool) error {
	f, closeFn, err := openOutput(outputPath)
	if err != nil {
		return err
	}

	if format == "xlsx" {
		err = output.WriteXLSX(f, records)
	} else {
		err = output.NewTSVWriter(f, includeUnit).WriteAll(records)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// reportExt returns the input file extension read by a backend.
func reportExt(name string) string {
	switch name {
	case config.BackendDocAIJSON:
		return ".json"
	case config.BackendXLSX:
		return ".xlsx"
	default:
		return ".pdf"
	}
}

// newLoader creates the configured backend and its cleanup function.
func newLoader(ctx context.Context, c *config.Config) (ghgextract.Loader, func(), error) {
	noop := func() {}

	switch c.Backend {
	case config.BackendDocAI:
		l, err := source.NewDocAILoader(ctx, source.DocAIConfig{
			ProjectID:   c.DocAI.ProjectID,
			Location:    c.DocAI.Location,
			ProcessorID: c.DocAI.ProcessorID,
			MaxPages:    c.DocAI.MaxPages,
			Timeout:     c.DocAI.Timeout,
		})
		if err != nil {
			return nil, noop, err
		}
		return l, func() { l.Close() }, nil
	case config.BackendDocAIJSON:
		return source.DocAIJSONLoader{}, noop, nil
	case config.BackendLocal:
		return source.NewLocalLoader(), noop, nil
	case config.BackendXLSX:
		return source.NewXLSXLoader(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported backend: %s", c.Backend)
	}
}
