// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

// decodeJSON reads a JSON request body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, fn string, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) resolveSensitivity(raw string) (models.Sensitivity, error) {
	if raw == "" {
		return h.sensitivity, nil
	}
	return models.ParseSensitivity(raw)
}

func (h *Handler) findDuplicates(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.findDuplicates"

	var req models.DuplicatesRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	sensitivity, err := h.resolveSensitivity(req.Sensitivity)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	groups, err := h.services.DuplicateService.FindDuplicates(r.Context(), req.Ciphers, sensitivity)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, models.DuplicatesResponse{Groups: nonNil(groups), Length: len(groups)}, http.StatusOK)
}

func (h *Handler) mergeCiphers(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.mergeCiphers"

	var req models.MergeRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	merged, err := h.services.MergeService.Merge(req.Ciphers)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, merged, http.StatusOK)
}

func (h *Handler) matchURI(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.matchURI"

	var req models.MatchRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	eq := models.EquivalentDomainsFromGroups(req.EquivalentDomains)
	matches, err := h.services.URLMatchService.Matches(r.Context(), req.URI, req.URL, req.DefaultMatch.Or(h.defaultMatch), eq)
	if err != nil {
		writeServiceError(w, r, fn, fmt.Errorf("match %q: %w", req.URI.URI, err))
		return
	}

	utils.WriteJSON(w, models.MatchResponse{Matches: matches}, http.StatusOK)
}

func (h *Handler) findBroadURIs(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.findBroadURIs"

	var req models.BroadURIsRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	eq := models.EquivalentDomainsFromGroups(req.EquivalentDomains)
	groups, err := h.services.URLMatchService.FindBroadURIs(r.Context(), req.Ciphers, req.DefaultMatch.Or(h.defaultMatch), eq)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, models.BroadURIsResponse{Groups: nonNil(groups), Length: len(groups)}, http.StatusOK)
}

// nonNil makes empty results encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
