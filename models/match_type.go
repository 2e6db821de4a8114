// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// MatchType is the policy that decides how a saved URI is compared against
// an observed URL.
//
// The zero value, [MatchTypeUnset], means that the URI has no override and the
// caller-supplied default applies.
type MatchType int

const (
	// MatchTypeUnset marks a URI without its own match policy.
	MatchTypeUnset MatchType = iota

	// MatchTypeDomain matches by registrable domain. App-scheme URIs
	// (androidapp://, iosapp://) fall back to host matching.
	MatchTypeDomain

	// MatchTypeHost matches by full host. The port takes part in the
	// comparison only when both sides specify one.
	MatchTypeHost

	// MatchTypeStartsWith matches when the observed URL starts with the
	// saved URI.
	MatchTypeStartsWith

	// MatchTypeExact matches literal equality. Equivalent domains are never
	// applied.
	MatchTypeExact

	// MatchTypeRegularExpression treats the saved URI as a case-insensitive
	// regular expression.
	MatchTypeRegularExpression

	// MatchTypeNever never matches.
	MatchTypeNever
)

// DefaultMatchType is the policy used when neither the URI nor the caller
// specifies one.
const DefaultMatchType = MatchTypeDomain

var matchTypeNames = map[MatchType]string{
	MatchTypeUnset:             "",
	MatchTypeDomain:            "domain",
	MatchTypeHost:              "host",
	MatchTypeStartsWith:        "starts_with",
	MatchTypeExact:             "exact",
	MatchTypeRegularExpression: "regular_expression",
	MatchTypeNever:             "never",
}

func (m MatchType) String() string {
	if name, ok := matchTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("match_type(%d)", int(m))
}

// Or returns m, or fallback when m is unset.
func (m MatchType) Or(fallback MatchType) MatchType {
	if m == MatchTypeUnset {
		return fallback
	}
	return m
}

// MarshalText implements [encoding.TextMarshaler].
func (m MatchType) MarshalText() ([]byte, error) {
	if _, ok := matchTypeNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMatchType, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *MatchType) UnmarshalText(text []byte) error {
	parsed, err := ParseMatchType(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMatchType converts a policy name into a [MatchType]. An empty string
// yields [MatchTypeUnset]. Both "starts_with" and "startswith" spellings are
// accepted.
func ParseMatchType(s string) (MatchType, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch name {
	case "startswith":
		return MatchTypeStartsWith, nil
	case "regex", "regularexpression":
		return MatchTypeRegularExpression, nil
	}
	for m, n := range matchTypeNames {
		if n == name {
			return m, nil
		}
	}
	return MatchTypeUnset, fmt.Errorf("%w: %q", ErrUnknownMatchType, s)
}
