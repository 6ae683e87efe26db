package service

import (
	"errors"

	"github.com/MKhiriev/go-auth-server/internal/validators"
)

// Input validation failures, surfaced to clients as 400.
var (
	ErrMissingSignupFields = validators.ErrMissingSignupFields
	ErrPasswordTooShort    = validators.ErrPasswordTooShort
	ErrPasswordTooLong     = validators.ErrPasswordTooLong
	ErrMissingLoginFields  = validators.ErrMissingLoginFields
	ErrProfilePicRequired  = validators.ErrProfilePicRequired
)

var (
	// ErrInvalidCredentials is returned by Login both for an unknown email
	// and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token is expired")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrMissingSigningKey is returned by NewTokenService for an empty secret.
	ErrMissingSigningKey = errors.New("token signing key is not configured")
)
