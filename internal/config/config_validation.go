// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultTokenIssuer    = "go-auth-server"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultHTTPAddress    = ":5000"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxBodyBytes   = 10 << 20
	defaultDBName         = "auth"
	defaultUploadTimeout  = 30 * time.Second
)

// applyDefaults fills zero-valued optional fields.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvProduction
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = defaultDBName
	}
	if cfg.Upload.Provider == "" {
		cfg.Upload.Provider = UploadProviderCloudinary
	}
	if cfg.Upload.Timeout == 0 {
		cfg.Upload.Timeout = defaultUploadTimeout
	}
}

// validate checks that the merged [StructuredConfig] satisfies all startup
// invariants. A missing signing secret is rejected here so that the server
// never issues tokens it could not verify.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.TokenSignKey) == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxBodyBytes < 0 {
		return ErrInvalidServerConfigs
	}

	return cfg.Upload.validate()
}

func (u Upload) validate() error {
	switch u.Provider {
	case UploadProviderCloudinary:
		c := u.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
			return fmt.Errorf("%w: cloudinary cloud name, api key and api secret are required", ErrInvalidUploadConfigs)
		}
	case UploadProviderS3:
		s := u.S3
		if s.Bucket == "" || s.Region == "" || s.PublicBaseURL == "" {
			return fmt.Errorf("%w: s3 bucket, region and public base url are required", ErrInvalidUploadConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidUploadConfigs, u.Provider)
	}

	return nil
}
