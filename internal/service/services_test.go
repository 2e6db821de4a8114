package service

import (
	"testing"

	"github.com/MKhiriev/go-vault-reconcile/internal/config"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_Stateless(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(Dependencies{}, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.URLMatchService)
	assert.NotNil(t, services.DuplicateService)
	assert.NotNil(t, services.MergeService)
	assert.NotNil(t, services.AppInfoService)
	assert.Nil(t, services.VaultService)
}

func TestNewServices_WithStorages(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(Dependencies{Storages: &store.Storages{}}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.VaultService)
	_, ok := services.VaultService.(*VaultValidationService)
	assert.True(t, ok, "vault service must be wrapped with validation")
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := NewServices(Dependencies{}, config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
