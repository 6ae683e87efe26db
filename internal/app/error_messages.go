// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// auth server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Keeping them in one place keeps
// the wording identical wherever the same failure is reported.
package app

const (
	// MsgSignupFieldsRequired is returned when a signup body lacks the full
	// name, the email or the password.
	MsgSignupFieldsRequired = "Full name, email and password are required inputs"

	// MsgPasswordTooShort is returned when a signup password has fewer than
	// six characters.
	MsgPasswordTooShort = "Password must be at least 6 characters"

	// MsgPasswordTooLong is returned when a signup password exceeds the
	// 72 bytes bcrypt can hash.
	MsgPasswordTooLong = "Password must be at most 72 bytes"

	// MsgEmailAlreadyExists is returned when a signup email is taken.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgLoginFieldsRequired is returned when a login body lacks the email
	// or the password.
	MsgLoginFieldsRequired = "Email and password are required inputs"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials"

	MsgLoggedOut = "Logged out successfully"

	// MsgProfilePicRequired is returned when update-profile is called
	// without a picture payload.
	MsgProfilePicRequired = "Profile pic is required"

	// MsgInvalidImagePayload is returned when the picture payload is neither
	// an image data URI, base64 image bytes nor an http(s) URL.
	MsgInvalidImagePayload = "Invalid image payload"

	// MsgImageUploadFailed is returned when the image upload service
	// rejects or fails the upload.
	MsgImageUploadFailed = "Image upload failed"

	// MsgNoTokenProvided is returned by protected routes called without the
	// session cookie.
	MsgNoTokenProvided = "Unauthorized - No Token Provided"

	// MsgInvalidToken is returned by protected routes when the session
	// token is forged, malformed, expired or names a deleted user.
	MsgInvalidToken = "Unauthorized - Invalid Token"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgRequestTooLarge is returned when the body exceeds the configured
	// size limit.
	MsgRequestTooLarge = "Request body too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
