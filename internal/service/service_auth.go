package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/store"
	"github.com/MKhiriev/go-auth-server/internal/utils"
	"github.com/MKhiriev/go-auth-server/internal/validators"
	"github.com/MKhiriev/go-auth-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification and session resolution using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenService verifies session tokens in Authenticate.
	tokenService TokenService

	// validator checks request bodies before any store call.
	validator validators.Validator

	hashPassword  func(password string) (string, error)
	matchPassword func(hash, password string) (bool, error)
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and TokenService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		validator:      validators.NewAuthRequestValidator(),
		hashPassword:   utils.HashPassword,
		matchPassword:  utils.MatchPassword,
	}
}

// Signup creates a new user account.
//
// The request is validated first (all fields present, then password length),
// so a short password never reaches the store. An already registered email
// is reported as store.ErrEmailAlreadyExists, both by the pre-check and by
// the store's unique constraint when two signups race.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid signup request")
		return models.User{}, err
	}

	email := store.NormalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("email", email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user signed up")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The account is looked up by email first and only then is the password
// compared. Unknown email and wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login request")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Debug().Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.matchPassword(foundUser.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.ID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		log.Debug().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// Authenticate verifies token and loads its subject. A valid token whose user
// no longer exists is treated as an invalid token.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	subject, err := a.tokenService.Verify(token)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, subject)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Debug().Str("user_id", subject).Msg("token subject does not exist")
		return models.User{}, ErrInvalidToken
	case err != nil:
		log.Err(err).Str("user_id", subject).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
