package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/migrations"
)

// DB is a SQL connection pool together with the driver specifics the
// repositories need: the squirrel placeholder format, the goose dialect
// and a driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder bound to the driver's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

const (
	pingAttempts = 3
	pingBackoff  = 500 * time.Millisecond
)

// pingWithRetry pings the database, retrying while the classifier
// considers the failure transient.
func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = conn.PingContext(ctx); err == nil {
			return nil
		}
		if classifier == nil || classifier.Classify(err) != Retryable || attempt == pingAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(pingBackoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("%w: %w", ErrConnectingDB, err)
}
