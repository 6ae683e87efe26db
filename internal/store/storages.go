// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/logger"
)

// Credential store backends selectable by DSN scheme.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMongo    = "mongo"
)

// Storages groups the repositories handed to the service layer together
// with the means to release the underlying connection.
type Storages struct {
	UserRepository UserRepository

	close func(ctx context.Context) error
}

// Backend returns the credential store backend selected by dsn, or
// [ErrUnsupportedDSN].
func Backend(dsn string) (string, error) {
	switch lower := strings.ToLower(dsn); {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"):
		return BackendSQLite, nil
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return BackendMongo, nil
	default:
		return "", ErrUnsupportedDSN
	}
}

// NewStorages connects to the backend selected by cfg.DB.DSN and prepares
// its schema:
//   - SQL backends run the embedded goose migrations;
//   - MongoDB gets its unique email index.
//
// Any failure is returned and is meant to abort startup before the HTTP
// listener is opened.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	backend, err := Backend(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendMongo:
		mdb, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}
		if err = mdb.EnsureIndexes(ctx); err != nil {
			_ = mdb.Close(ctx)
			return nil, fmt.Errorf("index creation failed: %w", err)
		}

		return &Storages{
			UserRepository: NewMongoUserRepository(mdb, log),
			close:          mdb.Close,
		}, nil
	default:
		connect := NewConnectPostgres
		if backend == BackendSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", backend, err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %w", ErrMigrating, err)
		}

		return newSQLStorages(db, log), nil
	}
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		close: func(context.Context) error {
			return db.Close()
		},
	}
}

// Close releases the database connection.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}

	return s.close(ctx)
}
