package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCipherNotFound is returned when a cipher addressed by id does not
	// exist, belongs to another account or was already soft-deleted.
	ErrCipherNotFound = errors.New("cipher was not found")

	// ErrUnsupportedSnapshot is returned for snapshot files whose extension
	// is neither JSON nor YAML.
	ErrUnsupportedSnapshot = errors.New("unsupported snapshot format")

	// ErrEmptyDSN is returned by [NewConnect] when no DSN is configured.
	ErrEmptyDSN = errors.New("database DSN is empty")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these before returning it.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to iterate rows")

	// ErrEncodingCipher is returned when a cipher payload cannot be
	// marshalled to or unmarshalled from its JSON column.
	ErrEncodingCipher = errors.New("failed to encode cipher payload")
)
