// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DuplicateGroup is a cluster of entries believed to represent the same
// record. Groups are derived on demand and never persisted.
type DuplicateGroup struct {
	// ID is the base64 SHA-256 of the concatenated member ids, or a random id
	// when that hash was already issued in the same run.
	ID string `json:"id"`

	// Accuracy is the mean of the pairwise scores that formed the group.
	Accuracy float64 `json:"accuracy"`

	// Ciphers are the original (not normalized) member entries. The first
	// one is the entry the group was seeded from.
	Ciphers []Cipher `json:"ciphers"`
}

// CipherIDs returns the ids of the group members in group order.
func (g DuplicateGroup) CipherIDs() []string {
	ids := make([]string, 0, len(g.Ciphers))
	for _, c := range g.Ciphers {
		ids = append(ids, c.ID)
	}
	return ids
}

// BroadURIGroup reports a Domain-matched URI that is likely too broad because
// another entry of the same domain is matched by host.
type BroadURIGroup struct {
	// Value is "<registrable domain>|<uri>".
	Value string `json:"value"`

	// Cipher is the entry holding the broad URI.
	Cipher Cipher `json:"cipher"`
}

// Sensitivity is the score threshold a pair of entries must strictly exceed
// to be grouped as duplicates.
type Sensitivity float64

const (
	SensitivityMax    Sensitivity = 0.1
	SensitivityHigh   Sensitivity = 0.2
	SensitivityNormal Sensitivity = 0.3
	SensitivityLow    Sensitivity = 0.4
	SensitivityMin    Sensitivity = 0.5
)

var sensitivityNames = map[string]Sensitivity{
	"max":    SensitivityMax,
	"high":   SensitivityHigh,
	"normal": SensitivityNormal,
	"low":    SensitivityLow,
	"min":    SensitivityMin,
}

// ParseSensitivity accepts a preset name ("max", "high", "normal", "low",
// "min") or a decimal threshold. An empty string yields [SensitivityNormal].
func ParseSensitivity(s string) (Sensitivity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return SensitivityNormal, nil
	}
	if preset, ok := sensitivityNames[name]; ok {
		return preset, nil
	}
	value, err := strconv.ParseFloat(name, 64)
	// NaN and infinities would turn the strict threshold comparison into a no-op
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSensitivity, s)
	}
	return Sensitivity(value), nil
}
