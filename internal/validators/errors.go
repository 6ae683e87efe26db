package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingSignupFields = errors.New("full name, email and password are required")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordTooLong     = errors.New("password is too long")
	ErrMissingLoginFields  = errors.New("email and password are required")
	ErrProfilePicRequired  = errors.New("profile pic is required")
)
