// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fake: adapter.DomainResolver
// ─────────────────────────────────────────────

type fakeResolver struct {
	fn    func(ctx context.Context, raw string) (string, error)
	calls int
}

func (f *fakeResolver) RegistrableDomain(ctx context.Context, raw string) (string, error) {
	f.calls++
	return f.fn(ctx, raw)
}

var errResolver = errors.New("resolver unavailable")

func failingResolver() *fakeResolver {
	return &fakeResolver{fn: func(context.Context, string) (string, error) {
		return "", errResolver
	}}
}

func panickingResolver(t *testing.T) *fakeResolver {
	return &fakeResolver{fn: func(_ context.Context, raw string) (string, error) {
		t.Fatalf("resolver must not be called, got %q", raw)
		return "", nil
	}}
}

func newPublicSuffixMatcher() URLMatchService {
	return NewURLMatchService(adapter.NewPublicSuffixResolver(), logger.Nop())
}

var appleEquivalents = models.EquivalentDomainsFromMap(map[string][]string{
	"apple.com": {"icloud.com"},
})

// ─────────────────────────────────────────────
// Matches
// ─────────────────────────────────────────────

func TestURLMatchService_Matches_Never(t *testing.T) {
	resolver := panickingResolver(t)
	svc := NewURLMatchService(resolver, logger.Nop())

	ok, err := svc.Matches(context.Background(),
		models.URI{URI: "https://google.com", Match: models.MatchTypeNever},
		"https://google.com", models.MatchTypeDomain, models.EquivalentDomains{})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, resolver.calls)
}

func TestURLMatchService_Matches_ExactIgnoresEquivalence(t *testing.T) {
	svc := newPublicSuffixMatcher()
	ctx := context.Background()

	exact, err := svc.Matches(ctx, models.URI{URI: "apple.com", Match: models.MatchTypeExact},
		"icloud.com", models.MatchTypeUnset, appleEquivalents)
	require.NoError(t, err)
	assert.False(t, exact)

	domain, err := svc.Matches(ctx, models.URI{URI: "apple.com", Match: models.MatchTypeDomain},
		"icloud.com", models.MatchTypeUnset, appleEquivalents)
	require.NoError(t, err)
	assert.True(t, domain)
}

func TestURLMatchService_Matches_Table(t *testing.T) {
	tests := []struct {
		name         string
		uri          models.URI
		observed     string
		defaultMatch models.MatchType
		eq           models.EquivalentDomains
		want         bool
	}{
		{
			name:     "domain matches subdomain",
			uri:      models.URI{URI: "google.com", Match: models.MatchTypeDomain},
			observed: "https://accounts.google.com/signin",
			want:     true,
		},
		{
			name:     "domain requires label boundary",
			uri:      models.URI{URI: "https://notgoogle.com", Match: models.MatchTypeDomain},
			observed: "https://google.com",
			want:     false,
		},
		{
			name:     "domain stored subdomain matches",
			uri:      models.URI{URI: "https://mail.google.com"},
			observed: "https://google.com",
			want:     true,
		},
		{
			name:         "unset falls back to caller default",
			uri:          models.URI{URI: "https://mail.google.com"},
			observed:     "https://google.com",
			defaultMatch: models.MatchTypeHost,
			want:         false,
		},
		{
			name:     "host ignores port when one side has none",
			uri:      models.URI{URI: "https://mail.google.com:8080", Match: models.MatchTypeHost},
			observed: "https://mail.google.com/inbox",
			want:     true,
		},
		{
			name:     "host compares ports when both present",
			uri:      models.URI{URI: "https://mail.google.com:8080", Match: models.MatchTypeHost},
			observed: "https://mail.google.com:9090",
			want:     false,
		},
		{
			name:     "host differs",
			uri:      models.URI{URI: "accounts.google.com", Match: models.MatchTypeHost},
			observed: "https://mail.google.com",
			want:     false,
		},
		{
			name:     "host substitutes equivalent domain",
			uri:      models.URI{URI: "https://login.icloud.com", Match: models.MatchTypeHost},
			observed: "https://login.apple.com/auth",
			eq:       appleEquivalents,
			want:     true,
		},
		{
			name:     "starts with",
			uri:      models.URI{URI: "https://example.com/account/", Match: models.MatchTypeStartsWith},
			observed: "https://example.com/account/settings",
			want:     true,
		},
		{
			name:     "starts with through equivalent domain",
			uri:      models.URI{URI: "https://icloud.com/account", Match: models.MatchTypeStartsWith},
			observed: "https://apple.com/account/settings",
			eq:       appleEquivalents,
			want:     true,
		},
		{
			name:     "starts with different path",
			uri:      models.URI{URI: "https://example.com/admin", Match: models.MatchTypeStartsWith},
			observed: "https://example.com/account",
			want:     false,
		},
		{
			name:     "exact ignores trailing slash",
			uri:      models.URI{URI: "https://example.com/login/", Match: models.MatchTypeExact},
			observed: " https://example.com/login",
			want:     true,
		},
		{
			name:     "regex is case-insensitive",
			uri:      models.URI{URI: `https://.*\.google\.com/.*`, Match: models.MatchTypeRegularExpression},
			observed: "HTTPS://MAIL.GOOGLE.COM/INBOX",
			want:     true,
		},
		{
			name:     "regex is anchored",
			uri:      models.URI{URI: "google", Match: models.MatchTypeRegularExpression},
			observed: "https://google.com",
			want:     false,
		},
		{
			name:     "regex through equivalent domain",
			uri:      models.URI{URI: `https://icloud\.com/.*`, Match: models.MatchTypeRegularExpression},
			observed: "https://apple.com/id",
			eq:       appleEquivalents,
			want:     true,
		},
		{
			name:     "host ignores trailing dot on observed url",
			uri:      models.URI{URI: "https://www.icloud.com", Match: models.MatchTypeHost},
			observed: "https://www.apple.com./",
			eq:       appleEquivalents,
			want:     true,
		},
		{
			name:     "host ignores trailing dot on stored uri",
			uri:      models.URI{URI: "https://www.apple.com.", Match: models.MatchTypeHost},
			observed: "https://www.apple.com/login",
			want:     true,
		},
		{
			name:     "domain ignores trailing dot",
			uri:      models.URI{URI: "icloud.com", Match: models.MatchTypeDomain},
			observed: "https://www.apple.com./",
			eq:       appleEquivalents,
			want:     true,
		},
		{
			name:     "app uri under domain compares hosts",
			uri:      models.URI{URI: "androidapp://com.example.app", Match: models.MatchTypeDomain},
			observed: "androidapp://com.example.app",
			want:     true,
		},
		{
			name:     "app uri under host with another package",
			uri:      models.URI{URI: "iosapp://com.example.app", Match: models.MatchTypeHost},
			observed: "iosapp://com.example.other",
			want:     false,
		},
	}

	svc := newPublicSuffixMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Matches(context.Background(), tt.uri, tt.observed, tt.defaultMatch, tt.eq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLMatchService_Matches_AppURIDoesNotResolve(t *testing.T) {
	resolver := panickingResolver(t)
	svc := NewURLMatchService(resolver, logger.Nop())

	ok, err := svc.Matches(context.Background(),
		models.URI{URI: "androidapp://com.example.app"},
		"https://example.com", models.MatchTypeDomain, models.EquivalentDomains{})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, resolver.calls)
}

func TestURLMatchService_Matches_ResolutionErrorPropagates(t *testing.T) {
	for _, match := range []models.MatchType{models.MatchTypeDomain, models.MatchTypeHost} {
		t.Run(match.String(), func(t *testing.T) {
			svc := NewURLMatchService(failingResolver(), logger.Nop())

			ok, err := svc.Matches(context.Background(),
				models.URI{URI: "https://example.com", Match: match},
				"https://example.com", models.MatchTypeUnset, models.EquivalentDomains{})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDomainResolution)
			assert.ErrorIs(t, err, errResolver)
			assert.False(t, ok)
		})
	}
}

func TestURLMatchService_Matches_FallbacksOnResolutionError(t *testing.T) {
	svc := NewURLMatchService(failingResolver(), logger.Nop())
	ctx := context.Background()

	ok, err := svc.Matches(ctx,
		models.URI{URI: "https://example.test/a", Match: models.MatchTypeStartsWith},
		"https://example.test/a/b", models.MatchTypeUnset, models.EquivalentDomains{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Matches(ctx,
		models.URI{URI: `.*example.*`, Match: models.MatchTypeRegularExpression},
		"https://example.test", models.MatchTypeUnset, models.EquivalentDomains{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestURLMatchService_Matches_InvalidRegex(t *testing.T) {
	svc := newPublicSuffixMatcher()

	ok, err := svc.Matches(context.Background(),
		models.URI{URI: "([", Match: models.MatchTypeRegularExpression},
		"https://example.com", models.MatchTypeUnset, models.EquivalentDomains{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRegex)
	assert.False(t, ok)
}

func TestURLMatchService_Matches_RegexCannotEscapeAnchors(t *testing.T) {
	svc := newPublicSuffixMatcher()

	ok, err := svc.Matches(context.Background(),
		models.URI{URI: `a\.com)|(.*evil`, Match: models.MatchTypeRegularExpression},
		"https://x.com/evil", models.MatchTypeUnset, models.EquivalentDomains{})

	require.ErrorIs(t, err, ErrInvalidRegex)
	assert.False(t, ok)
}

func TestURLMatchService_Matches_UnknownMatchType(t *testing.T) {
	svc := newPublicSuffixMatcher()

	_, err := svc.Matches(context.Background(),
		models.URI{URI: "https://example.com", Match: models.MatchType(42)},
		"https://example.com", models.MatchTypeUnset, models.EquivalentDomains{})

	assert.ErrorIs(t, err, models.ErrUnknownMatchType)
}

// ─────────────────────────────────────────────
// FindBroadURIs
// ─────────────────────────────────────────────

func TestURLMatchService_FindBroadURIs(t *testing.T) {
	hostCipher := models.Cipher{ID: "host", URIs: []models.URI{
		{URI: "https://mail.google.com", Match: models.MatchTypeHost},
		{URI: "androidapp://com.google.android", Match: models.MatchTypeHost},
	}}
	broad := models.Cipher{ID: "broad", URIs: []models.URI{
		{URI: "https://google.com", Match: models.MatchTypeDomain},
	}}
	unrelated := models.Cipher{ID: "unrelated", URIs: []models.URI{
		{URI: "https://example.com"},
	}}
	equivalent := models.Cipher{ID: "equivalent", URIs: []models.URI{
		{URI: "https://youtube.com"},
	}}
	silenced := models.Cipher{
		ID:            "silenced",
		IgnoredAlerts: []models.AlertType{models.AlertBroadURIs},
		URIs:          []models.URI{{URI: "https://google.com"}},
	}
	eq := models.EquivalentDomainsFromMap(map[string][]string{"google.com": {"youtube.com"}})

	groups, err := newPublicSuffixMatcher().FindBroadURIs(context.Background(),
		[]models.Cipher{hostCipher, broad, unrelated, equivalent, silenced}, models.MatchTypeUnset, eq)

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "google.com|https://google.com", groups[0].Value)
	assert.Equal(t, "broad", groups[0].Cipher.ID)
	assert.Equal(t, "youtube.com|https://youtube.com", groups[1].Value)
	assert.Equal(t, "equivalent", groups[1].Cipher.ID)
}

func TestURLMatchService_FindBroadURIs_SkipsUnresolvable(t *testing.T) {
	svc := NewURLMatchService(failingResolver(), logger.Nop())

	groups, err := svc.FindBroadURIs(context.Background(), []models.Cipher{
		{ID: "a", URIs: []models.URI{{URI: "https://a.example.com", Match: models.MatchTypeHost}}},
		{ID: "b", URIs: []models.URI{{URI: "https://example.com", Match: models.MatchTypeDomain}}},
	}, models.MatchTypeUnset, models.EquivalentDomains{})

	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestURLMatchService_FindBroadURIs_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPublicSuffixMatcher().FindBroadURIs(ctx, []models.Cipher{
		{ID: "a", URIs: []models.URI{{URI: "https://example.com"}}},
	}, models.MatchTypeUnset, models.EquivalentDomains{})

	assert.ErrorIs(t, err, context.Canceled)
}
