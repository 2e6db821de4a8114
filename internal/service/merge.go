// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vault-reconcile/models"
)

// Node is one element of a merge rule tree over values of type T: either a
// [Group] descending into a nested structure or a [Leaf] resolving a field.
type Node[T any] interface {
	merge(seed T, members []T) T
}

// Group addresses a nested value F of T. Get reports whether the value is
// present; Set returns a copy of T holding the new value.
type Group[T, F any] struct {
	Get      func(T) (F, bool)
	Set      func(T, F) T
	Children []Node[F]
}

// merge folds the children over the seed's nested value using the nested
// values of every member that has one. Nothing happens when no member has
// the value, or when the seed itself lacks it.
func (g Group[T, F]) merge(seed T, members []T) T {
	focused := make([]F, 0, len(members))
	for _, m := range members {
		if f, ok := g.Get(m); ok {
			focused = append(focused, f)
		}
	}
	if len(focused) == 0 {
		return seed
	}

	current, ok := g.Get(seed)
	if !ok {
		return seed
	}

	for _, child := range g.Children {
		current = child.merge(current, focused)
	}
	return g.Set(seed, current)
}

// Leaf addresses a field V of T and resolves the values present on the
// members with Strategy. The seed is returned unchanged when no member has
// a value.
type Leaf[T, V any] struct {
	Get      func(T) (V, bool)
	Set      func(T, V) T
	Strategy PickStrategy[V]
}

func (l Leaf[T, V]) merge(seed T, members []T) T {
	values := make([]V, 0, len(members))
	for _, m := range members {
		if v, ok := l.Get(m); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return seed
	}
	return l.Set(seed, l.Strategy.Pick(values))
}

type mergeService struct {
	rules Node[models.Cipher]
}

// NewMergeService returns a [MergeService] applying the cipher merge rules.
func NewMergeService() MergeService {
	return &mergeService{rules: cipherMergeRules()}
}

// Merge synthesizes one cipher from ciphers. The first cipher is the seed;
// its missing login, card, identity and SSH key are defaulted to empty
// values first. The inputs are not modified.
func (m *mergeService) Merge(ciphers []models.Cipher) (models.Cipher, error) {
	if len(ciphers) == 0 {
		return models.Cipher{}, ErrEmptyCluster
	}

	seed := ciphers[0]
	if seed.Login == nil {
		seed.Login = &models.Login{}
	}
	if seed.Card == nil {
		seed.Card = &models.Card{}
	}
	if seed.Identity == nil {
		seed.Identity = &models.Identity{}
	}
	if seed.SSHKey == nil {
		seed.SSHKey = &models.SSHKey{}
	}

	return m.rules.merge(seed, ciphers), nil
}
