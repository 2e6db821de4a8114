package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVaultSnapshot_LiveCiphers(t *testing.T) {
	retired := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	s := VaultSnapshot{Ciphers: []Cipher{{ID: "a"}, {ID: "b", DeletedDate: &retired}, {ID: "c"}}}

	live := s.LiveCiphers()

	assert.Equal(t, []string{"a", "c"}, []string{live[0].ID, live[1].ID})
	assert.Len(t, live, 2)
	assert.Empty(t, VaultSnapshot{}.LiveCiphers())
}
