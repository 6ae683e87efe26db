package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/logger"
)

// NewImageUploader builds the uploader selected by cfg.Provider.
func NewImageUploader(ctx context.Context, cfg config.Upload, log *logger.Logger) (ImageUploader, error) {
	switch cfg.Provider {
	case config.UploadProviderCloudinary:
		return NewCloudinaryUploader(cfg.Cloudinary, cfg.Timeout, log), nil
	case config.UploadProviderS3:
		return NewS3Uploader(ctx, cfg.S3, cfg.Timeout, log)
	default:
		return nil, fmt.Errorf("%w: unknown upload provider %q", config.ErrInvalidUploadConfigs, cfg.Provider)
	}
}
