// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// Environment names recognised by [App.IsDevelopment].
const (
	EnvDevelopment = "development"
	EnvLocal       = "local"
	EnvProduction  = "production"
)

// Upload providers recognised by [Upload.Provider].
const (
	UploadProviderCloudinary = "cloudinary"
	UploadProviderS3         = "s3"
)

// StructuredConfig is the top-level configuration container of the auth
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds runtime environment and session token settings.
	App App `envPrefix:"APP_"`

	// Storage holds the credential store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Upload holds the image upload service settings.
	Upload Upload `envPrefix:"UPLOAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the runtime environment flag and the session token parameters.
type App struct {
	// Environment is the runtime environment name ("development", "local",
	// "production"). It controls the Secure cookie attribute and log
	// verbosity.
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// TokenSignKey is the HMAC secret used to sign and verify session tokens.
	// Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of a session token and the
	// Max-Age of the session cookie.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// IsDevelopment reports whether the server runs in a local/development
// environment.
func (a App) IsDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(a.Environment)) {
	case EnvDevelopment, EnvLocal, "dev":
		return true
	default:
		return false
	}
}

// Storage groups the configuration of the credential store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the credential store.
type DB struct {
	// DSN selects the backend by scheme:
	//   - postgres:// or postgresql://  PostgreSQL
	//   - sqlite:// or file:            SQLite
	//   - mongodb:// or mongodb+srv://  MongoDB
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by SQL backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Server holds the inbound HTTP listener settings.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" form. A bare PORT
	// environment variable is accepted as well.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of request bodies (base64 images included).
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// CORSOrigins lists the origins allowed to send credentialed requests.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// Upload holds the image upload service settings.
type Upload struct {
	// Provider is "cloudinary" or "s3".
	// Env: UPLOAD_PROVIDER
	Provider string `env:"PROVIDER"`

	// Timeout bounds a single upload call.
	// Env: UPLOAD_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	Cloudinary Cloudinary `envPrefix:"CLOUDINARY_"`
	S3         S3         `envPrefix:"S3_"`
}

// Cloudinary holds the credentials of the Cloudinary upload API.
type Cloudinary struct {
	CloudName string `env:"CLOUD_NAME"`
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
	Folder    string `env:"FOLDER"`

	// BaseURL overrides the API root (https://api.cloudinary.com/v1_1).
	BaseURL string `env:"BASE_URL"`
}

// S3 holds the settings of an S3 compatible bucket (AWS, MinIO).
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// PublicBaseURL is the prefix of the URL returned for stored objects.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// UsePathStyle addresses the bucket as a path segment (MinIO).
	UsePathStyle bool `env:"USE_PATH_STYLE"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration from a .env file, environment variables, command-line flags
// and an optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
