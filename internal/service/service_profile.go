package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-server/internal/adapter"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/store"
	"github.com/MKhiriev/go-auth-server/internal/validators"
	"github.com/MKhiriev/go-auth-server/models"
)

type profileService struct {
	userRepository store.UserRepository
	uploader       adapter.ImageUploader
	validator      validators.Validator
}

func NewProfileService(userRepository store.UserRepository, uploader adapter.ImageUploader, logger *logger.Logger) ProfileService {
	logger.Debug().Msg("creating profile service")
	return &profileService{
		userRepository: userRepository,
		uploader:       uploader,
		validator:      validators.NewAuthRequestValidator(),
	}
}

// UpdateProfilePic uploads the payload and stores the resulting URL on the
// user. An empty payload fails with ErrProfilePicRequired before the
// uploader is called; uploader errors keep their adapter sentinels.
func (p *profileService) UpdateProfilePic(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	image, err := p.uploader.Upload(ctx, userID, req.ProfilePic)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile picture upload failed")
		return models.User{}, fmt.Errorf("profile picture upload failed: %w", err)
	}

	updated, err := p.userRepository.UpdateProfilePic(ctx, userID, image.URL)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile picture update failed")
		return models.User{}, fmt.Errorf("profile picture update failed: %w", err)
	}

	return updated, nil
}
