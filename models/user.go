package models

import "time"

// User is the account entity kept in the credential store.
// PasswordHash is never serialised; use [User.Public] for login/signup
// responses and the User value itself for the full record.
type User struct {
	// ID is the opaque unique identifier assigned by the store.
	ID string `json:"_id"`

	// FullName is the display name given at signup.
	FullName string `json:"fullName"`

	// Email is unique across all users. It is stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// ProfilePic is the hosted URL of the profile picture, nil until the
	// first successful profile update.
	ProfilePic *string `json:"profilePic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the reduced user representation returned by signup and login.
type PublicUser struct {
	ID         string  `json:"_id"`
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	ProfilePic *string `json:"profilePic"`
}

// Public returns the fields of u that may be exposed right after
// authentication.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}

// TableName returns the name of the table (or collection) holding users.
func (u User) TableName() string {
	return "users"
}
