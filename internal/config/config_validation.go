// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

// validate checks that the final merged [StructuredConfig] names a known
// default match type and a usable sensitivity.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseMatchType(cfg.App.DefaultMatch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if _, err := models.ParseSensitivity(cfg.App.Sensitivity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateServe checks the settings required by the long-running server on
// top of the ones enforced at load time.
func (cfg *StructuredConfig) ValidateServe() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SyncInterval > 0 && cfg.Adapter.EquivalentDomainsURL == "" {
		return fmt.Errorf("%w: sync interval set without equivalent domains url", ErrInvalidAdapterConfigs)
	}

	return nil
}

// DefaultMatchType returns the parsed default match type. It is safe to call
// on a validated config.
func (cfg *StructuredConfig) DefaultMatchType() models.MatchType {
	mt, err := models.ParseMatchType(cfg.App.DefaultMatch)
	if err != nil {
		return models.DefaultMatchType
	}
	return mt.Or(models.DefaultMatchType)
}

// DefaultSensitivity returns the parsed sensitivity threshold. It is safe to
// call on a validated config.
func (cfg *StructuredConfig) DefaultSensitivity() models.Sensitivity {
	s, err := models.ParseSensitivity(cfg.App.Sensitivity)
	if err != nil {
		return models.SensitivityNormal
	}
	return s
}
