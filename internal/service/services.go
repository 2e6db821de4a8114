package service

import (
	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/config"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

// Services bundles the reconciliation services. VaultService is nil when no
// storage was provided.
type Services struct {
	URLMatchService  URLMatchService
	DuplicateService DuplicateService
	MergeService     MergeService
	VaultService     VaultService
	AppInfoService   AppInfoService
}

// Dependencies carries the collaborators [NewServices] wires together.
// Storages and Fetcher are optional.
type Dependencies struct {
	Storages  *store.Storages
	Resolver  adapter.DomainResolver
	Fetcher   adapter.EquivalentDomainsFetcher
	BuildInfo models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	resolver := deps.Resolver
	if resolver == nil {
		resolver = adapter.NewPublicSuffixResolver()
	}

	ids := utils.NewUUIDGenerator()
	services := &Services{
		URLMatchService:  NewURLMatchService(resolver, logger),
		DuplicateService: NewDuplicateService(utils.NewSimilarityScorer(), ids, logger),
		MergeService:     NewMergeService(),
	}

	appInfo, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, err
	}
	services.AppInfoService = appInfo

	if deps.Storages != nil {
		vault := NewVaultService(
			deps.Storages.CipherRepository,
			deps.Storages.EquivalentDomainsRepository,
			deps.Fetcher,
			services.DuplicateService,
			services.MergeService,
			ids,
			logger,
		)
		services.VaultService = NewVaultValidationService().Wrap(vault)
	}

	return services, nil
}
