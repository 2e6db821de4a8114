// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// PublicSuffixResolver resolves registrable domains offline against the
// public suffix list compiled into golang.org/x/net/publicsuffix.
type PublicSuffixResolver struct{}

// NewPublicSuffixResolver returns a ready-to-use [PublicSuffixResolver].
func NewPublicSuffixResolver() *PublicSuffixResolver {
	return &PublicSuffixResolver{}
}

// RegistrableDomain implements [DomainResolver].
//
// IP literals and single-label hosts such as "localhost" resolve to
// themselves. Hosts that are themselves a public suffix (e.g. "co.uk")
// fail with [ErrUnresolvableDomain].
func (r *PublicSuffixResolver) RegistrableDomain(ctx context.Context, raw string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	host := HostOf(raw)
	if host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrUnresolvableDomain, raw)
	}

	if net.ParseIP(host) != nil || !strings.Contains(host, ".") {
		return host, nil
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolvableDomain, err)
	}

	return domain, nil
}

// HostOf extracts the lower-cased host (without port) from a URL or bare
// host. A missing scheme is treated as https. Returns "" when raw carries
// no host.
func HostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
}
