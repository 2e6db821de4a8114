package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/config"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/service"
	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/spf13/cobra"
)

const appName = "vault-reconcile"

// app carries the state shared by every subcommand.
type app struct {
	build   models.AppBuildInfo
	flags   *config.Flags
	verbose bool
	asJSON  bool
}

func newRootCmd(build models.AppBuildInfo) *cobra.Command {
	a := &app{build: build}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Find duplicate vault entries, merge them and test URI matching",
		Long:         `vault-reconcile inspects password vault snapshots (JSON or YAML) or serves the same operations over HTTP.`,
		Version:      build.String(),
		SilenceUsage: true,
	}

	a.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print results as JSON")

	root.AddCommand(
		newServeCmd(a),
		newDuplicatesCmd(a),
		newMergeCmd(a),
		newMatchCmd(a),
		newImportCmd(a),
	)

	return root
}

// config loads the merged configuration. A version baked in at build time
// replaces the configured one.
func (a *app) config() (*config.StructuredConfig, error) {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return nil, err
	}
	if v := a.build.BuildVersion(); v != "" {
		cfg.App.Version = v
	}
	return cfg, nil
}

func (a *app) cliLogger() *logger.Logger {
	return logger.NewCLILogger(appName, a.verbose)
}

// statelessServices builds the services that work on snapshots alone.
func (a *app) statelessServices(cfg *config.StructuredConfig, log *logger.Logger) (*service.Services, error) {
	return service.NewServices(service.Dependencies{BuildInfo: a.build}, *cfg, log)
}

// storedServices opens and migrates the configured database and builds the
// services on top of it. The returned func closes the connection.
func (a *app) storedServices(ctx context.Context, cfg *config.StructuredConfig, fetcher adapter.EquivalentDomainsFetcher, log *logger.Logger) (*service.Services, func(), error) {
	if cfg.Storage.DB.DSN == "" {
		return nil, nil, config.ErrInvalidStorageConfigs
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}

	if err = db.Migrate(); err != nil {
		closeDB()
		return nil, nil, err
	}

	services, err := service.NewServices(service.Dependencies{
		Storages:  store.NewStorages(db, log),
		Fetcher:   fetcher,
		BuildInfo: a.build,
	}, *cfg, log)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	return services, closeDB, nil
}
