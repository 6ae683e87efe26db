package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-server/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFullName targets the display name of a signup request.
	FieldFullName = "full_name"

	// FieldEmail targets the email of a signup or login request.
	FieldEmail = "email"

	// FieldPassword targets the presence of the password.
	FieldPassword = "password"

	// FieldPasswordLength targets the length bounds of the password.
	FieldPasswordLength = "password_length"

	// FieldProfilePic targets the profile picture payload.
	FieldProfilePic = "profile_pic"
)

const (
	// MinPasswordLength is the minimum password length in characters.
	MinPasswordLength = 6

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// AuthRequestValidator validates the bodies of the auth endpoints.
type AuthRequestValidator struct {
}

func NewAuthRequestValidator() Validator {
	return &AuthRequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported request are accepted.
//
// Supported types:
//   - models.SignupRequest / *models.SignupRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.UpdateProfileRequest / *models.UpdateProfileRequest
//
// Returns ErrUnsupportedType if obj does not match any known request.
// Fields are checked in order and the first failure is returned, so presence
// checks always come before length checks.
func (v *AuthRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthRequestValidator) validateSignupRequest(request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPassword, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if isBlank(request.FullName) {
				return ErrMissingSignupFields
			}
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrMissingSignupFields
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrMissingSignupFields
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(request.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrMissingLoginFields
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrMissingLoginFields
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateUpdateProfileRequest(request models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfilePic}
	}

	for _, f := range fields {
		switch f {
		case FieldProfilePic:
			if isBlank(request.ProfilePic) {
				return ErrProfilePicRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
