package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/utils"
	"github.com/MKhiriev/go-auth-server/models"
)

// Token parameters applied when the config leaves them empty.
const (
	DefaultTokenDuration = 7 * 24 * time.Hour
	DefaultTokenIssuer   = "go-auth-server"
)

// tokenService is the concrete implementation of TokenService.
// Tokens are HS256 JWTs carrying sub, iat, exp and iss; they are stateless
// and cannot be revoked before expiry.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every token.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	// duration is the token validity and the cookie Max-Age.
	duration time.Duration

	// secureCookie sets the Secure cookie attribute. Off only in development.
	secureCookie bool

	now func() time.Time
}

// NewTokenService constructs a TokenService from the application config.
// It refuses to start without a signing key, so a token that cannot be
// verified is never issued.
func NewTokenService(cfg config.App) (TokenService, error) {
	if strings.TrimSpace(cfg.TokenSignKey) == "" {
		return nil, ErrMissingSigningKey
	}

	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = DefaultTokenDuration
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = DefaultTokenIssuer
	}

	return &tokenService{
		signKey:      cfg.TokenSignKey,
		issuer:       issuer,
		duration:     duration,
		secureCookie: !cfg.IsDevelopment(),
		now:          time.Now,
	}, nil
}

func (s *tokenService) Mint(w http.ResponseWriter, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subject, s.duration, s.signKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	utils.SetSessionCookie(w, token.SignedString, s.duration, s.secureCookie)

	return token, nil
}

func (s *tokenService) Verify(tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpiredToken
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token.Subject, nil
}

func (s *tokenService) Clear(w http.ResponseWriter) {
	utils.ClearSessionCookie(w, s.secureCookie)
}
