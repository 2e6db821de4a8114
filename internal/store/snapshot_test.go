package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonSnapshot = `{
  "account_id": "acc-1",
  "ciphers": [
    {"id": "a", "type": "login", "name": "Google", "uris": [{"uri": "https://google.com", "match": "host"}],
     "login": {"username": "alice", "password": "p1"}}
  ],
  "equivalent_domains": [["apple.com", "icloud.com"]]
}`

const yamlSnapshot = `account_id: acc-1
ciphers:
  - id: a
    type: login
    name: Google
    uris:
      - uri: https://google.com
        match: host
    login:
      username: alice
      password: p1
equivalent_domains:
  - [apple.com, icloud.com]
`

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadVaultSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "vault.json", content: jsonSnapshot},
		{name: "yaml", file: "vault.yaml", content: yamlSnapshot},
		{name: "yml upper case", file: "vault.YML", content: yamlSnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := ReadVaultSnapshot(writeSnapshot(t, tt.file, tt.content))

			require.NoError(t, err)
			assert.Equal(t, "acc-1", snapshot.AccountID)
			require.Len(t, snapshot.Ciphers, 1)
			c := snapshot.Ciphers[0]
			assert.Equal(t, models.CipherTypeLogin, c.Type)
			assert.Equal(t, models.MatchTypeHost, c.URIs[0].Match)
			assert.Equal(t, "p1", c.Login.Password)
			assert.Equal(t, []string{"apple.com", "icloud.com"}, snapshot.Domains().Find("icloud.com"))
		})
	}
}

func TestReadVaultSnapshot_Errors(t *testing.T) {
	_, err := ReadVaultSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "open snapshot")

	_, err = ReadVaultSnapshot(writeSnapshot(t, "vault.txt", jsonSnapshot))
	assert.ErrorIs(t, err, ErrUnsupportedSnapshot)

	_, err = ReadVaultSnapshot(writeSnapshot(t, "vault.json", `{"cipherz": []}`))
	assert.ErrorContains(t, err, "decode snapshot")

	_, err = ReadVaultSnapshot(writeSnapshot(t, "vault.yaml", "ciphers:\n  - type: spaceship\n"))
	assert.ErrorIs(t, err, models.ErrUnknownCipherType)
}

func TestDecodeVaultSnapshot_EmptyYAML(t *testing.T) {
	snapshot, err := DecodeVaultSnapshot(strings.NewReader(""), ".yaml")

	require.NoError(t, err)
	assert.Empty(t, snapshot.Ciphers)
}
