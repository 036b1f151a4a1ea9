package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFallbackEmpty is returned by the fallback repository when nothing
	// has ever been saved to the local slot.
	ErrFallbackEmpty = errors.New("fallback slot is empty")

	// ErrPendingUploadNotFound is returned when a journal record that should
	// be marked as replayed does not exist.
	ErrPendingUploadNotFound = errors.New("pending upload was not found")

	// ErrFileNotFound is returned when a vault file record (or its blob) does
	// not exist.
	ErrFileNotFound = errors.New("file was not found")

	// ErrFileAlreadyExists is returned when a record with the same stored
	// file name already exists.
	ErrFileAlreadyExists = errors.New("file already exists")

	// ErrInvalidBlobName is returned for blob names that are empty or would
	// escape the storage directory.
	ErrInvalidBlobName = errors.New("invalid blob name")

	// ErrUnsupportedDriver is returned for an unknown database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
