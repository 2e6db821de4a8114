// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/service"
)

// accountSyncer is the slice of the vault service the sync worker needs.
type accountSyncer interface {
	AccountIDs(ctx context.Context) ([]string, error)
	SyncEquivalentDomains(ctx context.Context, accountID string) error
}

// EquivalentDomainsSync periodically refreshes the equivalent-domain groups
// of every known account.
type EquivalentDomainsSync struct {
	vault    accountSyncer
	interval time.Duration
	logger   *logger.Logger
}

func NewEquivalentDomainsSync(vault accountSyncer, interval time.Duration, logger *logger.Logger) *EquivalentDomainsSync {
	return &EquivalentDomainsSync{
		vault:    vault,
		interval: interval,
		logger:   logger,
	}
}

// Run syncs once immediately and then on every tick. A failing account is
// logged and skipped; the worker only stops when ctx is done.
func (s *EquivalentDomainsSync) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.syncAll(ctx)
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *EquivalentDomainsSync) syncAll(ctx context.Context) {
	accounts, err := s.vault.AccountIDs(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error().Err(err).Str("func", "*EquivalentDomainsSync.syncAll").Msg("listing accounts failed")
		}
		return
	}

	synced := 0
	for _, accountID := range accounts {
		if ctx.Err() != nil {
			return
		}

		err := s.vault.SyncEquivalentDomains(ctx, accountID)
		switch {
		case err == nil:
			synced++
		case errors.Is(err, service.ErrSyncDisabled):
			s.logger.Warn().Msg("equivalent domains sync is disabled, skipping run")
			return
		default:
			s.logger.Error().Err(err).Str("account_id", accountID).Msg("equivalent domains sync failed")
		}
	}

	s.logger.Debug().Int("accounts", len(accounts)).Int("synced", synced).Msg("equivalent domains sync finished")
}
