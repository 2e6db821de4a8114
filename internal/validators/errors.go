package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCipherID      = errors.New("cipher ID is required")
	ErrInvalidCipherType  = errors.New("invalid cipher type")
	ErrInvalidMatchType   = errors.New("invalid URI match type")
	ErrEmptyURI           = errors.New("URI cannot be empty")
	ErrEmptyCiphers       = errors.New("ciphers list cannot be empty")
	ErrTooFewCiphers      = errors.New("at least two ciphers are required")
	ErrEmptyIDs           = errors.New("IDs list cannot be empty")
	ErrTooFewIDs          = errors.New("at least two IDs are required")
	ErrDuplicateIDs       = errors.New("IDs must be unique")
	ErrEmptyURL           = errors.New("URL is required")
	ErrInvalidSensitivity = errors.New("invalid sensitivity")
)
