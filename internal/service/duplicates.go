// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// duplicatesLogTag tags the timing line posted after every detection run.
const duplicatesLogTag = "CipherDuplicatesCheck"

type duplicateService struct {
	scorer pairScorer
	ids    IDGenerator

	logger *logger.Logger
}

// NewDuplicateService returns a [DuplicateService] scoring string similarity
// with similarity and falling back to ids on group-id collisions.
func NewDuplicateService(similarity SimilarityScorer, ids IDGenerator, logger *logger.Logger) DuplicateService {
	return &duplicateService{
		scorer: pairScorer{similarity: similarity},
		ids:    ids,
		logger: logger,
	}
}

// cluster is a group of members found for one target before its id is
// assigned.
type cluster struct {
	members []models.Cipher
	scores  []float64
}

func (d *duplicateService) FindDuplicates(ctx context.Context, ciphers []models.Cipher, sensitivity models.Sensitivity) ([]models.DuplicateGroup, error) {
	start := time.Now()

	byType := groupByType(ciphers)

	// One goroutine per type group, each writing only its own slot.
	results := make([][]cluster, len(byType))
	g, gctx := errgroup.WithContext(ctx)
	for i, group := range byType {
		g.Go(func() error {
			clusters, err := d.clusterGroup(gctx, group, float64(sensitivity))
			if err != nil {
				return err
			}
			results[i] = clusters
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	issued := make(map[string]struct{})
	var groups []models.DuplicateGroup
	for _, clusters := range results {
		for _, c := range clusters {
			id := d.groupID(c.members, issued)
			issued[id] = struct{}{}
			groups = append(groups, models.DuplicateGroup{
				ID:       id,
				Accuracy: mean(c.scores),
				Ciphers:  c.members,
			})
		}
	}

	d.logger.Post(duplicatesLogTag, fmt.Sprintf("Found %d duplicates in %s", len(groups), time.Since(start)), zerolog.InfoLevel)

	return groups, nil
}

// groupByType drops ciphers that opted out of duplicate alerts, normalizes
// the rest and buckets them by type in first-appearance order.
func groupByType(ciphers []models.Cipher) [][]normalizedCipher {
	index := make(map[models.CipherType]int)
	var groups [][]normalizedCipher
	for _, c := range ciphers {
		if c.Ignores(models.AlertDuplicate) {
			continue
		}
		i, ok := index[c.Type]
		if !ok {
			i = len(groups)
			index[c.Type] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], normalizeCipher(c))
	}
	return groups
}

// clusterGroup walks the pool back to front: the last entry becomes the
// target and absorbs every remaining candidate, also scanned backwards,
// whose score is strictly above threshold.
func (d *duplicateService) clusterGroup(ctx context.Context, group []normalizedCipher, threshold float64) ([]cluster, error) {
	pool := make([]normalizedCipher, len(group))
	copy(pool, group)

	var out []cluster
	for len(pool) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target := pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		var c *cluster
		for j := len(pool) - 1; j >= 0; j-- {
			candidate := pool[j]
			accuracy := d.scorer.score(target.processed, candidate.processed)
			if !(accuracy > threshold) {
				continue
			}
			if c == nil {
				c = &cluster{members: []models.Cipher{target.source}}
			}
			c.members = append(c.members, candidate.source)
			c.scores = append(c.scores, accuracy)
			pool = append(pool[:j], pool[j+1:]...)
		}

		if c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

// groupID hashes the concatenated member ids. A hash that was already issued
// in this run is replaced by a random id.
func (d *duplicateService) groupID(members []models.Cipher, issued map[string]struct{}) string {
	var sb strings.Builder
	for _, m := range members {
		sb.WriteString(m.ID)
	}

	id := utils.HashString(sb.String())
	if _, taken := issued[id]; taken {
		return d.ids.Generate()
	}
	return id
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
