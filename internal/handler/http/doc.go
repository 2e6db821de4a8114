// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the reconciliation service.
//
// Stateless endpoints under /api operate on the entries carried in the
// request body. Endpoints under /api/vault/{accountID} operate on the stored
// vault of an account. Request tracing, access logging and response
// compression are applied to every route before the request reaches the
// service layer.
package http
