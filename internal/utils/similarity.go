// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// SimilarityScorer scores two strings with the Jaro-Winkler metric.
// Scores are normalized to [0,1] and deterministic for identical inputs.
type SimilarityScorer struct {
	metric *metrics.JaroWinkler
}

// NewSimilarityScorer returns a case-sensitive Jaro-Winkler scorer.
func NewSimilarityScorer() *SimilarityScorer {
	metric := metrics.NewJaroWinkler()
	metric.CaseSensitive = true
	return &SimilarityScorer{metric: metric}
}

// Score returns the similarity of a and b in [0,1].
func (s *SimilarityScorer) Score(a, b string) float64 {
	return strutil.Similarity(a, b, s.metric)
}
