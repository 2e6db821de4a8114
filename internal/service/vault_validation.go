package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-reconcile/internal/validators"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

// VaultValidationService rejects malformed input before it reaches the
// wrapped [VaultService].
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewCipherValidator(),
	}
}

func (v *VaultValidationService) FindDuplicates(ctx context.Context, accountID string, sensitivity models.Sensitivity) ([]models.DuplicateGroup, error) {
	if err := validateAccountID(accountID); err != nil {
		return nil, err
	}
	return v.inner.FindDuplicates(ctx, accountID, sensitivity)
}

func (v *VaultValidationService) MergeCiphers(ctx context.Context, accountID string, cipherIDs []string) (models.Cipher, error) {
	if err := validateAccountID(accountID); err != nil {
		return models.Cipher{}, err
	}
	if err := v.validator.Validate(ctx, models.VaultMergeRequest{CipherIDs: cipherIDs}); err != nil {
		return models.Cipher{}, mapValidationError(err)
	}
	return v.inner.MergeCiphers(ctx, accountID, cipherIDs)
}

func (v *VaultValidationService) ImportCiphers(ctx context.Context, accountID string, ciphers []models.Cipher) error {
	if err := validateAccountID(accountID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, models.ImportRequest{Ciphers: ciphers}); err != nil {
		return mapValidationError(err)
	}
	return v.inner.ImportCiphers(ctx, accountID, ciphers)
}

func (v *VaultValidationService) EquivalentDomains(ctx context.Context, accountID string) (models.EquivalentDomains, error) {
	if err := validateAccountID(accountID); err != nil {
		return models.EquivalentDomains{}, err
	}
	return v.inner.EquivalentDomains(ctx, accountID)
}

func (v *VaultValidationService) SyncEquivalentDomains(ctx context.Context, accountID string) error {
	if err := validateAccountID(accountID); err != nil {
		return err
	}
	return v.inner.SyncEquivalentDomains(ctx, accountID)
}

func (v *VaultValidationService) AccountIDs(ctx context.Context) ([]string, error) {
	return v.inner.AccountIDs(ctx)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func validateAccountID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return ErrValidationNoAccountID
	}
	return nil
}

// mapValidationError translates a validator error into a service
// validation error, keeping the original as context.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, validators.ErrEmptyCiphers):
		return fmt.Errorf("%w: %w", ErrValidationNoCiphers, err)
	case errors.Is(err, validators.ErrEmptyIDs),
		errors.Is(err, validators.ErrTooFewIDs),
		errors.Is(err, validators.ErrEmptyCipherID):
		return fmt.Errorf("%w: %w", ErrValidationNoCipherIDs, err)
	case errors.Is(err, validators.ErrDuplicateIDs):
		return fmt.Errorf("%w: %w", ErrValidationDuplicateIDs, err)
	default:
		return fmt.Errorf("%w: %w", ErrValidationInvalidCipher, err)
	}
}
