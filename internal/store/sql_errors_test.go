package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"wrapped retryable", fmt.Errorf("wrap: %w", &pgconn.PgError{Code: pgerrcode.ConnectionException}), Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_IsUniqueViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.False(t, c.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.False(t, c.IsUniqueViolation(errors.New("duplicate")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrap: %w", unique)))
	assert.False(t, c.IsUniqueViolation(notNull))
	assert.False(t, c.IsUniqueViolation(errors.New("UNIQUE constraint failed")))

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "./auth.db", sqliteDSN("sqlite://./auth.db"))
	assert.Equal(t, ":memory:", sqliteDSN("sqlite://:memory:"))
	assert.Equal(t, "file:auth.db?_fk=1", sqliteDSN("file:auth.db?_fk=1"))
}
