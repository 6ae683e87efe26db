package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-server/internal/adapter"
	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/store"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	ProfileService ProfileService
}

func NewServices(storages *store.Storages, uploader adapter.ImageUploader, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	return &Services{
		TokenService:   tokenService,
		AuthService:    NewAuthService(storages.UserRepository, tokenService, logger),
		ProfileService: NewProfileService(storages.UserRepository, uploader, logger),
	}, nil
}
