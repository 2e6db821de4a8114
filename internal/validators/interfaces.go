// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault entries and reconciliation requests
// before they reach the services.
//
// A [Validator] accepts a [models.Cipher] or one of the request DTOs
// ([models.DuplicatesRequest], [models.MergeRequest], [models.MatchRequest],
// [models.BroadURIsRequest], [models.VaultMergeRequest], [models.ImportRequest]).
// Optional field names restrict a cipher check to the named fields only.
package validators

import "context"

// Validator validates a value, optionally scoped to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
