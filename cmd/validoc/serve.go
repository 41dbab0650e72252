package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validoc/pkg/docserver"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation over HTTP",
		Long: `Serve the documentation of the registered validators.

Routes:
  GET /validators          names of the validators
  GET /validators/{name}   rules of one validator (?deep=true&format=json&lang=de)
  GET /healthz             liveness check

The listener is configured by VALIDOC_HTTP_* variables (ADDR, READ_TIMEOUT,
WRITE_TIMEOUT, IDLE_TIMEOUT, SHUTDOWN_TIMEOUT). The server stops gracefully on
SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := docserver.New(a.registry,
				docserver.WithLogger(a.logger),
				docserver.WithCatalog(a.catalog),
				docserver.WithMaxDepth(a.cfg.MaxDepth),
			)
			if err != nil {
				return err
			}
			return docserver.ListenAndServe(cmd.Context(), a.cfg.HTTP, srv, a.logger)
		},
	}
	cmd.Flags().StringVar(&a.cfg.HTTP.Addr, "addr", a.cfg.HTTP.Addr, "listen address (env VALIDOC_HTTP_ADDR)")
	return cmd
}
