// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

const (
	protocolAndroidApp = "androidapp://"
	protocolIOSApp     = "iosapp://"
)

type urlMatchService struct {
	resolver adapter.DomainResolver

	logger *logger.Logger
}

// NewURLMatchService returns a [URLMatchService] resolving registrable
// domains through resolver.
func NewURLMatchService(resolver adapter.DomainResolver, logger *logger.Logger) URLMatchService {
	return &urlMatchService{
		resolver: resolver,
		logger:   logger,
	}
}

func (s *urlMatchService) Matches(ctx context.Context, uri models.URI, observed string, defaultMatch models.MatchType, eq models.EquivalentDomains) (bool, error) {
	stored := uri.URI

	switch effectiveMatch(uri, defaultMatch) {
	case models.MatchTypeDomain:
		if isAppURI(stored) || isAppURI(observed) {
			return matchHostPort(stored, observed), nil
		}
		return s.matchDomain(ctx, stored, observed, eq)
	case models.MatchTypeHost:
		if isAppURI(stored) || isAppURI(observed) {
			return matchHostPort(stored, observed), nil
		}
		return s.matchHost(ctx, stored, observed, eq)
	case models.MatchTypeStartsWith:
		return s.matchStartsWith(ctx, stored, observed, eq), nil
	case models.MatchTypeExact:
		return trimURL(stored) == trimURL(observed), nil
	case models.MatchTypeRegularExpression:
		return s.matchRegex(ctx, stored, observed, eq)
	case models.MatchTypeNever:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d", models.ErrUnknownMatchType, int(uri.Match))
	}
}

// matchDomain succeeds when the stored host lies within any domain
// equivalent to the observed URL's registrable domain.
func (s *urlMatchService) matchDomain(ctx context.Context, stored, observed string, eq models.EquivalentDomains) (bool, error) {
	storedHost := hostOf(stored)
	observedHost := hostOf(observed)

	domain, err := s.resolve(ctx, observedHost)
	if err != nil {
		return false, err
	}

	for _, candidate := range eq.Find(domain) {
		if withinDomain(storedHost, candidate) {
			return true, nil
		}
	}
	return false, nil
}

// matchHost compares the stored host against every equivalent variant of the
// observed host. Ports are compared only when both sides carry one.
func (s *urlMatchService) matchHost(ctx context.Context, stored, observed string, eq models.EquivalentDomains) (bool, error) {
	storedURL := urlOf(stored)
	observedURL := urlOf(observed)
	if storedURL == nil || observedURL == nil {
		return false, nil
	}

	observedHost := hostnameOf(observedURL)
	domain, err := s.resolve(ctx, observedHost)
	if err != nil {
		return false, err
	}

	storedHost := hostnameOf(storedURL)
	if !portsCompatible(storedURL, observedURL) {
		return false, nil
	}

	for _, variant := range hostVariants(observedHost, domain, eq) {
		if storedHost == variant {
			return true, nil
		}
	}
	return false, nil
}

// matchStartsWith tests the stored prefix against every host-substituted
// variant of the observed URL, degrading to a plain prefix test when the
// observed domain cannot be resolved.
func (s *urlMatchService) matchStartsWith(ctx context.Context, stored, observed string, eq models.EquivalentDomains) bool {
	prefix := trimURL(stored)
	target := trimURL(observed)

	variants, err := s.urlVariants(ctx, target, eq)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "urlMatchService.matchStartsWith").Msg("falling back to plain prefix match")
		return strings.HasPrefix(target, prefix)
	}

	for _, variant := range variants {
		if strings.HasPrefix(variant, prefix) {
			return true
		}
	}
	return false
}

func (s *urlMatchService) matchRegex(ctx context.Context, stored, observed string, eq models.EquivalentDomains) (bool, error) {
	re, err := compileURIRegex(stored)
	if err != nil {
		return false, err
	}

	target := strings.TrimSpace(observed)
	variants, err := s.urlVariants(ctx, target, eq)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "urlMatchService.matchRegex").Msg("falling back to raw url regex match")
		return re.MatchString(target), nil
	}

	for _, variant := range variants {
		if re.MatchString(variant) {
			return true, nil
		}
	}
	return false, nil
}

func (s *urlMatchService) resolve(ctx context.Context, host string) (string, error) {
	domain, err := s.resolver.RegistrableDomain(ctx, host)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDomainResolution, err)
	}
	return strings.ToLower(domain), nil
}

// urlVariants returns raw with its host replaced by every equivalent
// variant. raw itself is always the first element.
func (s *urlMatchService) urlVariants(ctx context.Context, raw string, eq models.EquivalentDomains) ([]string, error) {
	host := hostOf(raw)
	if host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrDomainResolution, raw)
	}

	domain, err := s.resolve(ctx, host)
	if err != nil {
		return nil, err
	}

	variants := []string{raw}
	for _, variantHost := range hostVariants(host, domain, eq) {
		if variantHost == host {
			continue
		}
		variants = append(variants, substituteHost(raw, host, variantHost))
	}
	return variants, nil
}

// hostVariants swaps the registrable-domain suffix of host for each domain
// equivalent to domain.
func hostVariants(host, domain string, eq models.EquivalentDomains) []string {
	subdomain, ok := strings.CutSuffix(host, domain)
	if !ok {
		return []string{host}
	}

	candidates := eq.Find(domain)
	variants := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		variants = append(variants, subdomain+candidate)
	}
	return variants
}

// substituteHost replaces the first case-insensitive occurrence of host in
// raw with replacement.
func substituteHost(raw, host, replacement string) string {
	idx := strings.Index(strings.ToLower(raw), host)
	if idx < 0 {
		return raw
	}
	return raw[:idx] + replacement + raw[idx+len(host):]
}

// compileURIRegex anchors pattern to the whole URL. The pattern must parse on
// its own so unbalanced groups cannot break out of the anchors.
func compileURIRegex(pattern string) (*regexp.Regexp, error) {
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}

	re, err := regexp.Compile("(?i)^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}
	return re, nil
}

func matchHostPort(stored, observed string) bool {
	storedURL := urlOf(stored)
	observedURL := urlOf(observed)
	if storedURL == nil || observedURL == nil {
		return false
	}

	if hostnameOf(storedURL) != hostnameOf(observedURL) {
		return false
	}
	return portsCompatible(storedURL, observedURL)
}

func portsCompatible(a, b *url.URL) bool {
	if a.Port() == "" || b.Port() == "" {
		return true
	}
	return a.Port() == b.Port()
}

func withinDomain(host, domain string) bool {
	if domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func isAppURI(raw string) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(raw, protocolAndroidApp) || strings.HasPrefix(raw, protocolIOSApp)
}

func trimURL(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), "/")
}

// ensureScheme prefixes https:// to non-blank strings without a scheme.
func ensureScheme(raw string) string {
	if strings.TrimSpace(raw) == "" || strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}

func urlOf(raw string) *url.URL {
	u, err := url.Parse(ensureScheme(strings.TrimSpace(raw)))
	if err != nil {
		return nil
	}
	return u
}

// hostOf returns the lower-cased host of raw without a trailing FQDN dot.
func hostOf(raw string) string {
	return adapter.HostOf(raw)
}

func hostnameOf(u *url.URL) string {
	return strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
}

func effectiveMatch(uri models.URI, defaultMatch models.MatchType) models.MatchType {
	return uri.Match.Or(defaultMatch).Or(models.DefaultMatchType)
}
