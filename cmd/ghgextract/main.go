// Package main provides the CLI entry point for ghgextract.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/config"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ghgextract",
		Short: "Extract greenhouse-gas emissions from sustainability report tables",
		Long: `ghgextract finds Scope 1/2/3 emissions figures in the tables of
sustainability reports and writes them as tab-separated records.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(newExtractCmd(), newCleanCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and configures logging before any subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	return nil
}

// signalContext returns a context cancelled on interrupt or termination.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// extractOptions builds extraction options from the loaded configuration.
func extractOptions(dumpTables bool) (ghgextract.Options, error) {
	mode, err := ghgextract.ParseMode(cfg.Mode)
	if err != nil {
		return ghgextract.Options{}, err
	}
	return ghgextract.Options{
		Mode:       mode,
		Keywords:   cfg.Keywords,
		DumpTables: dumpTables,
	}, nil
}

// openOutput returns stdout when path is empty.
func openOutput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}
