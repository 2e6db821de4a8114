// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
)

// notFound answers unknown paths and unsupported methods alike with 404,
// so a wrong method does not reveal that the path exists. It is registered
// both as the router's NotFound and MethodNotAllowed handler.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
