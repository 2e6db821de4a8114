// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDomainsClient(t *testing.T, serverURL string) EquivalentDomainsFetcher {
	t.Helper()
	c, err := NewEquivalentDomainsClient(serverURL, time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestFetchEquivalentDomains_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/settings/domains", r.URL.Path)
		assert.Equal(t, "acc-1", r.Header.Get("X-Account-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"equivalentDomains": [["example.com", "example.org"]],
			"globalEquivalentDomains": [
				{"type": 1, "domains": ["apple.com", "icloud.com"], "excluded": false},
				{"type": 2, "domains": ["ameritrade.com", "tdameritrade.com"], "excluded": true}
			]
		}`))
	}))
	defer srv.Close()

	groups, err := newTestDomainsClient(t, srv.URL).FetchEquivalentDomains(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, []models.EquivalentDomainsGroup{
		{AccountID: "acc-1", Domains: []string{"example.com", "example.org"}},
		{AccountID: "acc-1", Domains: []string{"apple.com", "icloud.com"}, Global: true},
		{AccountID: "acc-1", Domains: []string{"ameritrade.com", "tdameritrade.com"}, Global: true, Excluded: true},
	}, groups)
}

func TestFetchEquivalentDomains_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	groups, err := newTestDomainsClient(t, srv.URL).FetchEquivalentDomains(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestFetchEquivalentDomains_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "rate limited", status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestDomainsClient(t, srv.URL).FetchEquivalentDomains(context.Background(), "acc-1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchEquivalentDomains_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestDomainsClient(t, srv.URL).FetchEquivalentDomains(context.Background(), "acc-1")

	require.Error(t, err)
	assert.EqualError(t, err, "http 418: I'm a teapot")
}

func TestFetchEquivalentDomains_LongErrorBodyIsTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer srv.Close()

	_, err := newTestDomainsClient(t, srv.URL).FetchEquivalentDomains(context.Background(), "acc-1")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Less(t, len(err.Error()), 300)
	assert.True(t, strings.HasSuffix(err.Error(), "..."))
}

func TestFetchEquivalentDomains_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestDomainsClient(t, url).FetchEquivalentDomains(context.Background(), "acc-1")
	assert.Error(t, err)
}

func TestNewEquivalentDomainsClient_InvalidURL(t *testing.T) {
	_, err := NewEquivalentDomainsClient("", time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyBaseURL)

	_, err = NewEquivalentDomainsClient("http://", time.Second, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" vault.example.com:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://vault.example.com:8080", got)
}
