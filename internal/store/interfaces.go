package store

import (
	"context"

	"github.com/MKhiriev/go-auth-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store port. Implementations keep Email
// unique, so two concurrent CreateUser calls for the same address cannot
// both succeed.
type UserRepository interface {
	// CreateUser persists user and returns it with the store-assigned ID
	// and timestamps. A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by (normalized) email.
	// Returns [ErrUserNotFound] when there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up a user by ID.
	// Returns [ErrUserNotFound] when there is none.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateProfilePic sets the profile picture URL of the user and returns
	// the updated record. Returns [ErrUserNotFound] for an unknown ID.
	UpdateProfilePic(ctx context.Context, userID, profilePicURL string) (models.User, error)
}

// ErrorClassificator inspects driver errors for a particular SQL backend.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err was caused by a UNIQUE constraint.
	IsUniqueViolation(err error) bool
}
