package main

import (
	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/handler"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/server"
	"github.com/MKhiriev/go-vault-reconcile/internal/workers"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reconciliation HTTP API",
		Long: `Starts the HTTP API backed by the database named by --dsn. With --domains-url
and --sync-interval set, equivalent domains are refreshed in the background.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if err = cfg.ValidateServe(); err != nil {
				return err
			}

			log := logger.NewLogger(appName + "-server")
			log.Info().Str("version", cfg.App.Version).Msg("starting")

			var fetcher adapter.EquivalentDomainsFetcher
			if cfg.Adapter.EquivalentDomainsURL != "" {
				fetcher, err = adapter.NewEquivalentDomainsClient(cfg.Adapter.EquivalentDomainsURL, cfg.Adapter.RequestTimeout, log)
				if err != nil {
					return err
				}
			}

			services, closeDB, err := a.storedServices(cmd.Context(), cfg, fetcher, log)
			if err != nil {
				return err
			}
			defer closeDB()

			handlers, err := handler.NewHandlers(services, *cfg, log)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(handlers, cfg.Server, log)
			if err != nil {
				return err
			}
			background := workers.NewWorkers(services, cfg.Workers, log)

			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return srv.RunServer(gctx) })
			g.Go(func() error { return background.Run(gctx) })

			return g.Wait()
		},
	}
}
