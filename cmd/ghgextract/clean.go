package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/clean"
)

var (
	cleanInputDir string
	cleanSectors  []string
	cleanOutput   string
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [LOGFILE]",
		Short: "Filter extraction output to clean five-column records",
		Long: `clean keeps record lines of known sectors with exactly five fields and
a numeric value, rewriting the value in canonical form. It reads LOGFILE, or
stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClean,
	}

	cmd.Flags().StringVar(&cleanInputDir, "input-dir", "", "Report directory whose sub-directories name the sectors")
	cmd.Flags().StringSliceVar(&cleanSectors, "sector", nil, "Allowed sector (repeatable)")
	cmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	sectors, err := cleanSectorList()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		in = f
	}

	out, closeFn, err := openOutput(cleanOutput)
	if err != nil {
		return err
	}

	stats, err := clean.NewFilter(sectors).Run(in, out)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	slog.Info("clean finished", "lines", stats.Lines, "kept", stats.Kept, "dropped", stats.Dropped)
	return nil
}

// cleanSectorList resolves the sector allow-list: explicit --sector flags,
// then the sub-directories of the input directory, then configured sectors.
func cleanSectorList() ([]string, error) {
	if len(cleanSectors) > 0 {
		return cleanSectors, nil
	}

	dir := cleanInputDir
	if dir == "" {
		dir = cfg.InputDir
	}
	if dir != "" {
		paths, err := ghgextract.FindReports(dir, "")
		if err != nil {
			return nil, err
		}
		sectors := ghgextract.SectorsFromReports(paths)
		if len(sectors) == 0 {
			return nil, fmt.Errorf("%w in %s", ghgextract.ErrNoReports, dir)
		}
		return sectors, nil
	}

	return cfg.Sectors, nil
}
