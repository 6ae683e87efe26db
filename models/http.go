package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/auth/update-profile.
// ProfilePic is a data URI, a raw base64 image or an http(s) URL.
type UpdateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}
