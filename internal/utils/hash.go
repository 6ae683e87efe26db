package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost used for new password hashes.
const PasswordHashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of password.
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret1")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// MatchPassword reports whether password matches the bcrypt hash.
// A malformed hash is reported as an error; a plain mismatch is not.
func MatchPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password hash: %w", err)
	}
}
