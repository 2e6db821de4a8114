// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DuplicatesRequest asks for duplicate groups among the given entries.
type DuplicatesRequest struct {
	Ciphers []Cipher `json:"ciphers"`

	// Sensitivity is a preset name or a decimal threshold.
	Sensitivity string `json:"sensitivity,omitempty"`
}

// DuplicatesResponse holds the detected groups.
type DuplicatesResponse struct {
	Groups []DuplicateGroup `json:"groups"`
	Length int              `json:"length"`
}

// MergeRequest asks to synthesize one entry from a cluster of duplicates.
type MergeRequest struct {
	Ciphers []Cipher `json:"ciphers"`
}

// VaultMergeRequest asks to merge stored entries of an account.
type VaultMergeRequest struct {
	CipherIDs []string `json:"cipher_ids"`
}

// ImportRequest carries entries to be stored for an account.
type ImportRequest struct {
	Ciphers []Cipher `json:"ciphers"`
}

// MatchRequest asks whether a saved URI matches an observed URL.
type MatchRequest struct {
	URI          URI       `json:"uri"`
	URL          string    `json:"url"`
	DefaultMatch MatchType `json:"default_match,omitempty"`

	// EquivalentDomains lists groups of interchangeable domains.
	EquivalentDomains [][]string `json:"equivalent_domains,omitempty"`
}

// MatchResponse holds the outcome of a [MatchRequest].
type MatchResponse struct {
	Matches bool `json:"matches"`
}

// BroadURIsRequest asks for Domain-matched URIs that are likely too broad.
type BroadURIsRequest struct {
	Ciphers           []Cipher   `json:"ciphers"`
	DefaultMatch      MatchType  `json:"default_match,omitempty"`
	EquivalentDomains [][]string `json:"equivalent_domains,omitempty"`
}

// BroadURIsResponse holds the detected broad URIs.
type BroadURIsResponse struct {
	Groups []BroadURIGroup `json:"groups"`
	Length int             `json:"length"`
}

// EquivalentDomainsFromGroups converts raw domain lists into groups.
func EquivalentDomainsFromGroups(raw [][]string) EquivalentDomains {
	groups := make([]EquivalentDomainsGroup, 0, len(raw))
	for _, domains := range raw {
		groups = append(groups, EquivalentDomainsGroup{Domains: domains})
	}
	return NewEquivalentDomains(groups...)
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
