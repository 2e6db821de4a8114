// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound collaborators used by the
// reconciliation services: registrable-domain resolution and the upstream
// equivalent-domains settings endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DomainResolver returns the registrable domain (eTLD+1) of a URL or host,
// e.g. "https://mail.google.com/inbox" → "google.com".
type DomainResolver interface {
	// RegistrableDomain resolves raw, which may be a bare host or a URL with
	// scheme, port and path. Returns an error wrapping [ErrUnresolvableDomain]
	// when no registrable domain exists.
	RegistrableDomain(ctx context.Context, raw string) (string, error)
}

// EquivalentDomainsFetcher loads equivalent-domain groups from the settings
// service for a single account.
type EquivalentDomainsFetcher interface {
	// FetchEquivalentDomains returns the account's custom groups followed by
	// the global ones. Excluded global groups are returned with Excluded set.
	FetchEquivalentDomains(ctx context.Context, accountID string) ([]models.EquivalentDomainsGroup, error)
}
