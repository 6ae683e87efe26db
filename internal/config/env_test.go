// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ENV":            "development",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_MAX_BODY_BYTES":  "1024",
		"SERVER_CORS_ORIGINS":    "http://localhost:5173,https://app.example.com",

		"STORAGE_DB_DATABASE_URI": "mongodb://localhost:27017",
		"STORAGE_DB_NAME":         "chat",

		"UPLOAD_PROVIDER":              "s3",
		"UPLOAD_TIMEOUT":               "10s",
		"UPLOAD_CLOUDINARY_CLOUD_NAME": "demo",
		"UPLOAD_CLOUDINARY_API_KEY":    "key",
		"UPLOAD_CLOUDINARY_API_SECRET": "secret",
		"UPLOAD_S3_BUCKET":             "avatars",
		"UPLOAD_S3_REGION":             "us-east-1",
		"UPLOAD_S3_USE_PATH_STYLE":     "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1024), cfg.Server.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.Server.CORSOrigins)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
	assert.Equal(t, "chat", cfg.Storage.DB.Name)

	assert.Equal(t, "s3", cfg.Upload.Provider)
	assert.Equal(t, 10*time.Second, cfg.Upload.Timeout)
	assert.Equal(t, "demo", cfg.Upload.Cloudinary.CloudName)
	assert.Equal(t, "key", cfg.Upload.Cloudinary.APIKey)
	assert.Equal(t, "secret", cfg.Upload.Cloudinary.APISecret)
	assert.Equal(t, "avatars", cfg.Upload.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.Upload.S3.Region)
	assert.True(t, cfg.Upload.S3.UsePathStyle)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_BarePort(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "5001"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, ":5001", cfg.Server.HTTPAddress)
}

func TestParseEnv_ServerAddressWinsOverPort(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PORT":           "5001",
		"SERVER_ADDRESS": "127.0.0.1:9000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "seven days"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_MissingFileIsSkipped(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "from-process")

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_ISSUER=from-file\nAUTH_DOTENV_ONLY=dotenv-value\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("AUTH_DOTENV_ONLY") })

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "from-process", os.Getenv("APP_TOKEN_ISSUER"))
	assert.Equal(t, "dotenv-value", os.Getenv("AUTH_DOTENV_ONLY"))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"PORT",

		"APP_ENV",
		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_TOKEN_DURATION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_MAX_BODY_BYTES",
		"SERVER_CORS_ORIGINS",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_DB_NAME",

		"UPLOAD_PROVIDER",
		"UPLOAD_TIMEOUT",
		"UPLOAD_CLOUDINARY_CLOUD_NAME",
		"UPLOAD_CLOUDINARY_API_KEY",
		"UPLOAD_CLOUDINARY_API_SECRET",
		"UPLOAD_CLOUDINARY_FOLDER",
		"UPLOAD_CLOUDINARY_BASE_URL",
		"UPLOAD_S3_BUCKET",
		"UPLOAD_S3_REGION",
		"UPLOAD_S3_ENDPOINT",
		"UPLOAD_S3_ACCESS_KEY",
		"UPLOAD_S3_SECRET_KEY",
		"UPLOAD_S3_PUBLIC_BASE_URL",
		"UPLOAD_S3_USE_PATH_STYLE",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}
