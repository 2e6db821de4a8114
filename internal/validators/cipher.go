package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the identifier of a cipher.
	FieldID = "id"

	// FieldType targets the cipher type.
	FieldType = "type"

	// FieldURIs targets the saved URIs of a cipher and their match overrides.
	FieldURIs = "uris"

	// FieldCiphers targets the list of ciphers carried by a request.
	FieldCiphers = "ciphers"

	// FieldCipherIDs targets the list of stored cipher ids to merge.
	FieldCipherIDs = "cipher_ids"

	// FieldSensitivity targets the duplicate detection threshold.
	FieldSensitivity = "sensitivity"

	// FieldURL targets the observed URL of a match request.
	FieldURL = "url"

	// FieldDefaultMatch targets the caller-supplied default match type.
	FieldDefaultMatch = "default_match"
)

// CipherValidator implements [Validator] for ciphers and the request models
// of the reconciliation API. Value and pointer forms are both accepted.
type CipherValidator struct{}

// NewCipherValidator constructs a [CipherValidator].
func NewCipherValidator() Validator {
	return &CipherValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Cipher
//   - models.ImportRequest
//   - models.MergeRequest
//   - models.VaultMergeRequest
//   - models.DuplicatesRequest
//   - models.MatchRequest
//   - models.BroadURIsRequest
//
// Returns ErrUnsupportedType for anything else.
func (v *CipherValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Cipher:
		return v.validateCipher(ctx, value, fields...)
	case *models.Cipher:
		return v.validateCipher(ctx, *value, fields...)

	case models.ImportRequest:
		return v.validateCiphers(ctx, value.Ciphers, 1, fields...)
	case *models.ImportRequest:
		return v.validateCiphers(ctx, value.Ciphers, 1, fields...)

	case models.MergeRequest:
		return v.validateCiphers(ctx, value.Ciphers, 1, fields...)
	case *models.MergeRequest:
		return v.validateCiphers(ctx, value.Ciphers, 1, fields...)

	case models.BroadURIsRequest:
		return v.validateBroadURIsRequest(ctx, value, fields...)
	case *models.BroadURIsRequest:
		return v.validateBroadURIsRequest(ctx, *value, fields...)

	case models.VaultMergeRequest:
		return v.validateVaultMergeRequest(value, fields...)
	case *models.VaultMergeRequest:
		return v.validateVaultMergeRequest(*value, fields...)

	case models.DuplicatesRequest:
		return v.validateDuplicatesRequest(ctx, value, fields...)
	case *models.DuplicatesRequest:
		return v.validateDuplicatesRequest(ctx, *value, fields...)

	case models.MatchRequest:
		return v.validateMatchRequest(value, fields...)
	case *models.MatchRequest:
		return v.validateMatchRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCipher checks a single cipher. Default fields: type, uris.
func (v *CipherValidator) validateCipher(_ context.Context, c models.Cipher, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldURIs}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				return ErrEmptyCipherID
			}
		case FieldType:
			if _, err := c.Type.MarshalText(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidCipherType, err)
			}
		case FieldURIs:
			for i, uri := range c.URIs {
				if strings.TrimSpace(uri.URI) == "" {
					return fmt.Errorf("%w: uris[%d]", ErrEmptyURI, i)
				}
				if err := validMatchType(uri.Match); err != nil {
					return fmt.Errorf("uris[%d]: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCiphers requires at least minCount entries, each valid under fields,
// with no id repeated.
func (v *CipherValidator) validateCiphers(ctx context.Context, ciphers []models.Cipher, minCount int, fields ...string) error {
	if len(ciphers) == 0 {
		return ErrEmptyCiphers
	}
	if len(ciphers) < minCount {
		return ErrTooFewCiphers
	}

	seen := make(map[string]struct{}, len(ciphers))
	for i, c := range ciphers {
		if err := v.validateCipher(ctx, c, fields...); err != nil {
			return fmt.Errorf("ciphers[%d]: %w", i, err)
		}
		if c.ID == "" {
			continue
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateIDs, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}

// validateVaultMergeRequest requires two or more distinct, non-empty ids.
func (v *CipherValidator) validateVaultMergeRequest(req models.VaultMergeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCipherIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldCipherIDs:
			if len(req.CipherIDs) == 0 {
				return ErrEmptyIDs
			}
			if len(req.CipherIDs) < 2 {
				return ErrTooFewIDs
			}
			seen := make(map[string]struct{}, len(req.CipherIDs))
			for _, id := range req.CipherIDs {
				if strings.TrimSpace(id) == "" {
					return ErrEmptyCipherID
				}
				if _, ok := seen[id]; ok {
					return fmt.Errorf("%w: %s", ErrDuplicateIDs, id)
				}
				seen[id] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDuplicatesRequest checks the sensitivity and every cipher. An
// empty cipher list is valid and yields no groups.
func (v *CipherValidator) validateDuplicatesRequest(ctx context.Context, req models.DuplicatesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSensitivity, FieldCiphers}
	}

	for _, f := range fields {
		switch f {
		case FieldSensitivity:
			if _, err := models.ParseSensitivity(req.Sensitivity); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSensitivity, err)
			}
		case FieldCiphers:
			for i, c := range req.Ciphers {
				if err := v.validateCipher(ctx, c); err != nil {
					return fmt.Errorf("ciphers[%d]: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CipherValidator) validateMatchRequest(req models.MatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldURIs, FieldDefaultMatch}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if strings.TrimSpace(req.URL) == "" {
				return ErrEmptyURL
			}
		case FieldURIs:
			if strings.TrimSpace(req.URI.URI) == "" {
				return ErrEmptyURI
			}
			if err := validMatchType(req.URI.Match); err != nil {
				return err
			}
		case FieldDefaultMatch:
			if err := validMatchType(req.DefaultMatch); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CipherValidator) validateBroadURIsRequest(ctx context.Context, req models.BroadURIsRequest, fields ...string) error {
	if err := validMatchType(req.DefaultMatch); err != nil {
		return err
	}
	for i, c := range req.Ciphers {
		if err := v.validateCipher(ctx, c, fields...); err != nil {
			return fmt.Errorf("ciphers[%d]: %w", i, err)
		}
	}
	return nil
}

func validMatchType(m models.MatchType) error {
	if _, err := m.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMatchType, err)
	}
	return nil
}
