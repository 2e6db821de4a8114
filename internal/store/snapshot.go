package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-vault-reconcile/models"
	"gopkg.in/yaml.v3"
)

// ReadVaultSnapshot loads a snapshot file. The format follows the
// extension: .json, or .yaml / .yml.
func ReadVaultSnapshot(path string) (models.VaultSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return DecodeVaultSnapshot(f, filepath.Ext(path))
}

// DecodeVaultSnapshot decodes a snapshot in the format named by ext.
func DecodeVaultSnapshot(r io.Reader, ext string) (models.VaultSnapshot, error) {
	var snapshot models.VaultSnapshot

	data, err := io.ReadAll(r)
	if err != nil {
		return snapshot, fmt.Errorf("read snapshot: %w", err)
	}

	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&snapshot)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&snapshot)
		if err == io.EOF {
			err = nil
		}
	default:
		return snapshot, fmt.Errorf("%w: %q", ErrUnsupportedSnapshot, ext)
	}
	if err != nil {
		return snapshot, fmt.Errorf("decode snapshot: %w", err)
	}

	return snapshot, nil
}
