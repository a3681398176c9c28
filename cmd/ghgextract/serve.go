package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/server"
)

var serveAddr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve extraction over HTTP",
		Long: `serve accepts Document AI JSON documents at POST /v1/extract and responds
with tab-separated emission records.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}

	opts, err := extractOptions(false)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	return server.New(opts).ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout)
}
