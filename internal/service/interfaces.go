package service

import (
	"context"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// URLMatchService decides whether a stored URI and an observed URL refer to
// the same site.
type URLMatchService interface {
	// Matches evaluates uri against url under uri.Match, or defaultMatch when
	// the URI carries no override. The pair is ordered: uri is the stored
	// side, url the observed one.
	Matches(ctx context.Context, uri models.URI, url string, defaultMatch models.MatchType, eq models.EquivalentDomains) (bool, error)
	// FindBroadURIs reports Domain-matched URIs whose registrable domain is
	// also stored with Host matching elsewhere in ciphers.
	FindBroadURIs(ctx context.Context, ciphers []models.Cipher, defaultMatch models.MatchType, eq models.EquivalentDomains) ([]models.BroadURIGroup, error)
}

// DuplicateService clusters ciphers that likely describe the same record.
type DuplicateService interface {
	// FindDuplicates groups ciphers whose pairwise score is strictly above
	// sensitivity. The only error is a cancelled ctx.
	FindDuplicates(ctx context.Context, ciphers []models.Cipher, sensitivity models.Sensitivity) ([]models.DuplicateGroup, error)
}

// MergeService synthesizes one cipher from a duplicate cluster.
type MergeService interface {
	Merge(ciphers []models.Cipher) (models.Cipher, error)
}

// VaultService runs reconciliation against the stored vault of an account.
type VaultService interface {
	FindDuplicates(ctx context.Context, accountID string, sensitivity models.Sensitivity) ([]models.DuplicateGroup, error)
	MergeCiphers(ctx context.Context, accountID string, cipherIDs []string) (models.Cipher, error)
	ImportCiphers(ctx context.Context, accountID string, ciphers []models.Cipher) error
	EquivalentDomains(ctx context.Context, accountID string) (models.EquivalentDomains, error)
	SyncEquivalentDomains(ctx context.Context, accountID string) error
	AccountIDs(ctx context.Context) ([]string, error)
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// SimilarityScorer returns a deterministic similarity of two strings in [0,1].
type SimilarityScorer interface {
	Score(a, b string) float64
}

// IDGenerator produces random identifiers.
type IDGenerator interface {
	Generate() string
}

// AppInfoService reports build metadata of the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
