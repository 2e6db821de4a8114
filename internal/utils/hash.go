// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// HashSHA256 computes the SHA-256 digest of data using a hasher pulled from
// the package pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Example usage:
//
//	digest := utils.HashSHA256([]byte("some data"))
func HashSHA256(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// EncodeBase64 encodes data with the standard padded base64 alphabet.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// HashString returns the base64 encoded SHA-256 digest of s.
// It is used to derive deterministic identifiers from member ids.
//
// Example usage:
//
//	id := utils.HashString("cipher-1" + "cipher-2")
func HashString(s string) string {
	return EncodeBase64(HashSHA256([]byte(s)))
}
