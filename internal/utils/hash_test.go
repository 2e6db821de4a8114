// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSHA256_MatchesStdlib(t *testing.T) {
	data := []byte("test-data")
	want := sha256.Sum256(data)

	assert.Equal(t, want[:], HashSHA256(data))
	assert.Equal(t, HashSHA256(data), HashSHA256(data), "hash must be deterministic for the same input")
}

func TestHashSHA256_Empty(t *testing.T) {
	want := sha256.Sum256(nil)
	assert.Equal(t, want[:], HashSHA256(nil))
}

func TestHashString(t *testing.T) {
	sum := sha256.Sum256([]byte("ab"))
	want := base64.StdEncoding.EncodeToString(sum[:])

	assert.Equal(t, want, HashString("ab"))
	assert.NotEqual(t, HashString("ab"), HashString("ba"))
}

func TestHashSHA256_Concurrent(t *testing.T) {
	want := sha256.Sum256([]byte("parallel"))

	var wg sync.WaitGroup
	results := make([][]byte, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = HashSHA256([]byte("parallel"))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want[:], got, "result %d", i)
	}
}
