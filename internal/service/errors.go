package service

import "errors"

var (
	// ErrDomainResolution wraps resolver failures surfaced by Domain and
	// Host matching. Callers should report "unable to determine match".
	ErrDomainResolution = errors.New("unable to determine match")
	// ErrInvalidRegex is returned when a stored regular-expression URI does
	// not compile.
	ErrInvalidRegex = errors.New("invalid regular expression")
	// ErrEmptyCluster is returned by Merge for an empty input.
	ErrEmptyCluster = errors.New("cannot merge an empty cluster")
	// ErrVersionIsNotSpecified is returned when no application version is
	// configured.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoAccountID   = errors.New("no account ID was given")
	ErrValidationNoCipherIDs   = errors.New("at least two cipher IDs are required to merge")
	ErrValidationNoCiphers     = errors.New("no ciphers provided")
	ErrValidationDuplicateIDs  = errors.New("cipher IDs must be unique")
	ErrValidationInvalidCipher = errors.New("invalid cipher provided")
	ErrCipherNotFound          = errors.New("cipher not found")
	ErrSyncDisabled            = errors.New("equivalent domains sync is not configured")
)
