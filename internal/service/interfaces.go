package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues, verifies and clears session tokens. The token travels
// in the session cookie, so minting and clearing write to the response.
type TokenService interface {
	// Mint signs a token for subject and sets it as the session cookie on w.
	Mint(w http.ResponseWriter, subject string) (models.Token, error)

	// Verify checks signature, algorithm, issuer and expiry and returns the
	// subject. Fails with ErrInvalidToken or ErrExpiredToken.
	Verify(token string) (string, error)

	// Clear expires the session cookie on w. It is idempotent.
	Clear(w http.ResponseWriter)
}

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Authenticate resolves a raw session token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

type ProfileService interface {
	UpdateProfilePic(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
}
