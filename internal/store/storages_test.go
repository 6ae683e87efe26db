package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/models"
)

func TestBackend(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr error
	}{
		{dsn: "postgres://u:p@localhost:5432/auth", want: BackendPostgres},
		{dsn: "postgresql://localhost/auth", want: BackendPostgres},
		{dsn: "sqlite://./auth.db", want: BackendSQLite},
		{dsn: "file:auth.db?cache=shared", want: BackendSQLite},
		{dsn: "mongodb://localhost:27017", want: BackendMongo},
		{dsn: "MongoDB+SRV://cluster.example.net", want: BackendMongo},
		{dsn: "mysql://localhost/auth", wantErr: ErrUnsupportedDSN},
		{dsn: "", wantErr: ErrUnsupportedDSN},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := Backend(tt.dsn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "redis://localhost"}}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestNewStorages_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "auth.db")

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: "sqlite://" + path}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close(ctx) })

	created, err := storages.UserRepository.CreateUser(ctx, models.User{FullName: "Ann", Email: "ann@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.FileExists(t, path)

	found, err := storages.UserRepository.FindUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close(context.Background()))
}
