package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-server/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
	// parameter is empty or zero.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptySubject is returned when a verified token carries no "sub".
	ErrEmptySubject = errors.New("empty subject error")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the
// following registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-auth-server", userID, 7*24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString, Subject: subject}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation includes the HS256 signature (any other algorithm is
// rejected), the issuer claim, the presence and validity of "exp" and a
// non-empty subject. Errors wrap the jwt package sentinels, so callers can
// tell an expired token apart with errors.Is(err, jwt.ErrTokenExpired).
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "go-auth-server")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString, Subject: claims.Subject}, nil
}
