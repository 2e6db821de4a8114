// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// EquivalentDomainsGroup is a configured set of domains that are treated as
// interchangeable when matching URIs (for example a bank operating under
// several brand domains).
type EquivalentDomainsGroup struct {
	// ID identifies the group in the store.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// AccountID is the owner account of the group.
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`

	// Domains lists the interchangeable domains.
	Domains []string `json:"domains" yaml:"domains"`

	// Excluded disables the group without deleting it.
	Excluded bool `json:"excluded,omitempty" yaml:"excluded,omitempty"`

	// Global marks groups shipped by the server rather than created
	// by the user.
	Global bool `json:"global,omitempty" yaml:"global,omitempty"`
}

// EquivalentDomains is a lookup index from a domain to every domain
// considered interchangeable with it. The zero value is an empty index.
type EquivalentDomains struct {
	domains map[string][]string
}

// NewEquivalentDomains builds an index from the given groups.
// Every domain of a non-excluded group maps to the whole group.
func NewEquivalentDomains(groups ...EquivalentDomainsGroup) EquivalentDomains {
	index := make(map[string][]string)
	for _, group := range groups {
		if group.Excluded {
			continue
		}
		list := normalizeDomains(group.Domains)
		for _, d := range list {
			index[d] = list
		}
	}
	return EquivalentDomains{domains: index}
}

// EquivalentDomainsFromMap builds an index from a map literal: the key and
// its values form one group, so {"apple.com": ["icloud.com"]} makes both
// domains equivalent to each other.
func EquivalentDomainsFromMap(m map[string][]string) EquivalentDomains {
	groups := make([]EquivalentDomainsGroup, 0, len(m))
	for domain, others := range m {
		groups = append(groups, EquivalentDomainsGroup{
			Domains: append([]string{domain}, others...),
		})
	}
	return NewEquivalentDomains(groups...)
}

// Find returns every domain equivalent to domain, including itself.
// Unknown domains yield a single-element list holding domain as is.
func (e EquivalentDomains) Find(domain string) []string {
	if group, ok := e.domains[strings.ToLower(domain)]; ok {
		return group
	}
	return []string{domain}
}

// Len returns the number of indexed domains.
func (e EquivalentDomains) Len() int {
	return len(e.domains)
}

func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	seen := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
