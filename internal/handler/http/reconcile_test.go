// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/config"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/mock"
	"github.com/MKhiriev/go-vault-reconcile/internal/service"
	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// newReconcileRouter wires the real reconciliation services around resolver.
func newReconcileRouter(t *testing.T, resolver adapter.DomainResolver) http.Handler {
	t.Helper()
	services, err := service.NewServices(
		service.Dependencies{Resolver: resolver},
		config.StructuredConfig{App: config.App{Version: "test"}},
		logger.Nop(),
	)
	require.NoError(t, err)
	return newTestHandler(t, services).Init()
}

func googleLogin(id, password string) models.Cipher {
	return models.Cipher{
		ID:    id,
		Type:  models.CipherTypeLogin,
		Name:  "Google",
		URIs:  []models.URI{{URI: "https://accounts.google.com/signin"}},
		Login: &models.Login{Username: "alice@gmail.com", Password: password},
	}
}

func post(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return serve(t, router, httptest.NewRequest(http.MethodPost, path, jsonBody(t, body)))
}

// ─────────────────────────────────────────────
// POST /api/duplicates
// ─────────────────────────────────────────────

func TestFindDuplicates(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	rec := post(t, router, "/api/duplicates", models.DuplicatesRequest{
		Ciphers: []models.Cipher{
			googleLogin("a", "hunter2"),
			googleLogin("b", "hunter2"),
			{ID: "c", Type: models.CipherTypeSecureNote, Name: "Wi-Fi", Notes: "router password"},
		},
		Sensitivity: "max",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[models.DuplicatesResponse](t, rec)
	require.Equal(t, 1, resp.Length)
	assert.ElementsMatch(t, []string{"a", "b"}, resp.Groups[0].CipherIDs())
	assert.NotEmpty(t, resp.Groups[0].ID)
}

func TestFindDuplicates_EmptyVault(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	rec := post(t, router, "/api/duplicates", models.DuplicatesRequest{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"groups":[],"length":0}`, rec.Body.String())
}

func TestFindDuplicates_BadRequests(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"ciphers":`},
		{name: "unknown sensitivity", body: `{"sensitivity":"paranoid"}`},
		{name: "unknown cipher type", body: `{"ciphers":[{"id":"a","type":"wallet"}]}`},
		{name: "unknown match type", body: `{"ciphers":[{"id":"a","type":"login","uris":[{"uri":"x.com","match":"fuzzy"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/duplicates", strings.NewReader(tt.body))
			rec := serve(t, router, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decodeBody[utils.ErrorBody](t, rec).Error)
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/merge
// ─────────────────────────────────────────────

func TestMergeCiphers(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	first := googleLogin("a", "one")
	first.Tags = []string{"work"}
	second := googleLogin("b", "two")
	second.Tags = []string{"personal", "work"}
	second.Attachments = []models.Attachment{{ID: "f", FileName: "backup.txt", Size: 10}}

	rec := post(t, router, "/api/merge", models.MergeRequest{Ciphers: []models.Cipher{first, second}})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	merged := decodeBody[models.Cipher](t, rec)
	assert.Equal(t, models.CipherTypeLogin, merged.Type)
	assert.Equal(t, []string{"work", "personal"}, merged.Tags)
	assert.Empty(t, merged.Attachments)
	require.NotNil(t, merged.Login)
	assert.Equal(t, "one", merged.Login.Password)
}

func TestMergeCiphers_EmptyCluster(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	rec := post(t, router, "/api/merge", models.MergeRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/match
// ─────────────────────────────────────────────

func TestMatchURI(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	tests := []struct {
		name string
		req  models.MatchRequest
		want bool
	}{
		{
			name: "domain by default",
			req:  models.MatchRequest{URI: models.URI{URI: "https://google.com"}, URL: "https://mail.google.com/inbox"},
			want: true,
		},
		{
			name: "host default rejects subdomain",
			req: models.MatchRequest{
				URI:          models.URI{URI: "https://google.com"},
				URL:          "https://mail.google.com/inbox",
				DefaultMatch: models.MatchTypeHost,
			},
			want: false,
		},
		{
			name: "equivalent domains",
			req: models.MatchRequest{
				URI:               models.URI{URI: "https://apple.com"},
				URL:               "https://www.icloud.com",
				EquivalentDomains: [][]string{{"apple.com", "icloud.com"}},
			},
			want: true,
		},
		{
			name: "never",
			req:  models.MatchRequest{URI: models.URI{URI: "https://google.com", Match: models.MatchTypeNever}, URL: "https://google.com"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, router, "/api/match", tt.req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, decodeBody[models.MatchResponse](t, rec).Matches)
		})
	}
}

func TestMatchURI_ResolutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mock.NewMockDomainResolver(ctrl)
	resolver.EXPECT().RegistrableDomain(gomock.Any(), gomock.Any()).
		Return("", adapter.ErrUnresolvableDomain).
		AnyTimes()

	router := newReconcileRouter(t, resolver)

	rec := post(t, router, "/api/match", models.MatchRequest{
		URI: models.URI{URI: "https://intranet"},
		URL: "https://intranet/login",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "unable to determine match", decodeBody[utils.ErrorBody](t, rec).Error)
}

func TestMatchURI_MissingURL(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	rec := post(t, router, "/api/match", models.MatchRequest{URI: models.URI{URI: "google.com"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/broad-uris
// ─────────────────────────────────────────────

func TestFindBroadURIs(t *testing.T) {
	router := newReconcileRouter(t, adapter.NewPublicSuffixResolver())

	broad := models.Cipher{ID: "broad", Type: models.CipherTypeLogin, URIs: []models.URI{{URI: "https://google.com"}}}
	precise := models.Cipher{ID: "precise", Type: models.CipherTypeLogin, URIs: []models.URI{{URI: "https://mail.google.com", Match: models.MatchTypeHost}}}

	rec := post(t, router, "/api/broad-uris", models.BroadURIsRequest{Ciphers: []models.Cipher{broad, precise}})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[models.BroadURIsResponse](t, rec)
	require.Equal(t, 1, resp.Length)
	assert.Equal(t, "google.com|https://google.com", resp.Groups[0].Value)
	assert.Equal(t, "broad", resp.Groups[0].Cipher.ID)
}
