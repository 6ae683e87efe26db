package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid cloudinary config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "blank token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "   " },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative body limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxBodyBytes = -1 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "cloudinary without secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Upload.Cloudinary.APISecret = "" },
			wantErr: ErrInvalidUploadConfigs,
		},
		{
			name: "valid s3 config",
			mutate: func(cfg *StructuredConfig) {
				cfg.Upload.Provider = UploadProviderS3
				cfg.Upload.S3 = S3{Bucket: "b", Region: "us-east-1", PublicBaseURL: "https://cdn.example.com"}
			},
		},
		{
			name: "s3 without bucket",
			mutate: func(cfg *StructuredConfig) {
				cfg.Upload.Provider = UploadProviderS3
				cfg.Upload.S3 = S3{Region: "us-east-1", PublicBaseURL: "https://cdn.example.com"}
			},
			wantErr: ErrInvalidUploadConfigs,
		},
		{
			name:    "unknown provider",
			mutate:  func(cfg *StructuredConfig) { cfg.Upload.Provider = "imgur" },
			wantErr: ErrInvalidUploadConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{env: "development", want: true},
		{env: "Development", want: true},
		{env: "local", want: true},
		{env: "dev", want: true},
		{env: "production", want: false},
		{env: "", want: false},
		{env: "staging", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, App{Environment: tt.env}.IsDevelopment())
		})
	}
}
