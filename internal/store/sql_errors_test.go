package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestWithSQLiteOptions(t *testing.T) {
	assert.Equal(t, "file:vault.db?"+sqliteDSNOptions, withSQLiteOptions("vault.db"))
	assert.Equal(t, "file:vault.db?mode=rwc&"+sqliteDSNOptions, withSQLiteOptions("file:vault.db?mode=rwc"))
}

func TestUniqueViolation(t *testing.T) {
	assert.True(t, isPostgresUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, isPostgresUniqueViolation(pgError(pgerrcode.DeadlockDetected)))
	assert.False(t, isPostgresUniqueViolation(errors.New("plain")))

	assert.True(t, isSQLiteUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isSQLiteUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}
