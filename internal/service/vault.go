// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

type vaultService struct {
	ciphers store.CipherRepository
	domains store.EquivalentDomainsRepository

	// fetcher is nil when no settings endpoint is configured.
	fetcher adapter.EquivalentDomainsFetcher

	duplicates DuplicateService
	merger     MergeService
	ids        IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewVaultService builds a [VaultService] over the stored vault. A nil
// fetcher makes SyncEquivalentDomains return [ErrSyncDisabled].
func NewVaultService(
	ciphers store.CipherRepository,
	domains store.EquivalentDomainsRepository,
	fetcher adapter.EquivalentDomainsFetcher,
	duplicates DuplicateService,
	merger MergeService,
	ids IDGenerator,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		ciphers:    ciphers,
		domains:    domains,
		fetcher:    fetcher,
		duplicates: duplicates,
		merger:     merger,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (v *vaultService) FindDuplicates(ctx context.Context, accountID string, sensitivity models.Sensitivity) ([]models.DuplicateGroup, error) {
	ciphers, err := v.ciphers.ListLiveCiphers(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}
	return v.duplicates.FindDuplicates(ctx, ciphers, sensitivity)
}

func (v *vaultService) MergeCiphers(ctx context.Context, accountID string, cipherIDs []string) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	stored, err := v.ciphers.GetCiphers(ctx, accountID, cipherIDs)
	if err != nil {
		return models.Cipher{}, fmt.Errorf("load ciphers: %w", err)
	}

	byID := make(map[string]models.Cipher, len(stored))
	for _, c := range stored {
		byID[c.ID] = c
	}
	cluster := make([]models.Cipher, 0, len(cipherIDs))
	for _, id := range cipherIDs {
		c, ok := byID[id]
		if !ok {
			return models.Cipher{}, fmt.Errorf("%w: %s", ErrCipherNotFound, id)
		}
		cluster = append(cluster, c)
	}

	merged, err := v.merger.Merge(cluster)
	if err != nil {
		return models.Cipher{}, err
	}
	merged.ID = v.ids.Generate()
	merged.AccountID = accountID
	merged.RevisionDate = v.now().UTC()
	merged.DeletedDate = nil

	if err = v.ciphers.ReplaceWithMerged(ctx, merged, cipherIDs); err != nil {
		if errors.Is(err, store.ErrCipherNotFound) {
			return models.Cipher{}, fmt.Errorf("%w: %w", ErrCipherNotFound, err)
		}
		return models.Cipher{}, fmt.Errorf("persist merged cipher: %w", err)
	}

	log.Info().
		Str("func", "vaultService.MergeCiphers").
		Str("account_id", accountID).
		Str("merged_id", merged.ID).
		Strs("original_ids", cipherIDs).
		Msg("ciphers merged")
	return merged, nil
}

func (v *vaultService) ImportCiphers(ctx context.Context, accountID string, ciphers []models.Cipher) error {
	now := v.now().UTC()

	prepared := make([]models.Cipher, len(ciphers))
	for i, c := range ciphers {
		c.AccountID = accountID
		if c.ID == "" {
			c.ID = v.ids.Generate()
		}
		if c.RevisionDate.IsZero() {
			c.RevisionDate = now
		}
		prepared[i] = c
	}

	if err := v.ciphers.SaveCiphers(ctx, prepared...); err != nil {
		return fmt.Errorf("save ciphers: %w", err)
	}
	return nil
}

func (v *vaultService) EquivalentDomains(ctx context.Context, accountID string) (models.EquivalentDomains, error) {
	groups, err := v.domains.ListEquivalentDomains(ctx, accountID)
	if err != nil {
		return models.EquivalentDomains{}, fmt.Errorf("load equivalent domains: %w", err)
	}
	return models.NewEquivalentDomains(groups...), nil
}

func (v *vaultService) SyncEquivalentDomains(ctx context.Context, accountID string) error {
	if v.fetcher == nil {
		return ErrSyncDisabled
	}
	log := logger.FromContext(ctx)

	groups, err := v.fetcher.FetchEquivalentDomains(ctx, accountID)
	if err != nil {
		return fmt.Errorf("fetch equivalent domains: %w", err)
	}
	for i := range groups {
		groups[i].ID = v.ids.Generate()
		groups[i].AccountID = accountID
	}

	if err = v.domains.ReplaceEquivalentDomains(ctx, accountID, groups); err != nil {
		return fmt.Errorf("store equivalent domains: %w", err)
	}

	log.Debug().
		Str("func", "vaultService.SyncEquivalentDomains").
		Str("account_id", accountID).
		Int("groups", len(groups)).
		Msg("equivalent domains synchronised")
	return nil
}

func (v *vaultService) AccountIDs(ctx context.Context) ([]string, error) {
	return v.ciphers.AccountIDs(ctx)
}
