// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists vault entries and equivalent-domain groups in a
// relational database (PostgreSQL through pgx, or SQLite) and reads vault
// snapshot files.
//
// Queries are built with squirrel so the same repository code serves both
// dialects; transient failures are retried according to the dialect's
// [ErrorClassificator].
package store

import (
	"context"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CipherRepository stores vault entries per account.
type CipherRepository interface {
	// SaveCiphers inserts the ciphers or overwrites the stored ones with the
	// same id.
	SaveCiphers(ctx context.Context, ciphers ...models.Cipher) error

	// GetCiphers returns the live ciphers of the account with the given ids.
	// Unknown ids are skipped; the result order is unspecified.
	GetCiphers(ctx context.Context, accountID string, ids []string) ([]models.Cipher, error)

	// ListLiveCiphers returns every cipher of the account that was not
	// soft-deleted, ordered by id.
	ListLiveCiphers(ctx context.Context, accountID string) ([]models.Cipher, error)

	// ReplaceWithMerged stores merged and soft-deletes originalIDs in one
	// transaction. It fails with [ErrCipherNotFound] unless every original is
	// live.
	ReplaceWithMerged(ctx context.Context, merged models.Cipher, originalIDs []string) error

	// AccountIDs lists every account owning at least one cipher.
	AccountIDs(ctx context.Context) ([]string, error)
}

// EquivalentDomainsRepository stores equivalent-domain groups per account.
type EquivalentDomainsRepository interface {
	ListEquivalentDomains(ctx context.Context, accountID string) ([]models.EquivalentDomainsGroup, error)

	// ReplaceEquivalentDomains swaps the account's groups for groups in one
	// transaction.
	ReplaceEquivalentDomains(ctx context.Context, accountID string, groups []models.EquivalentDomainsGroup) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
