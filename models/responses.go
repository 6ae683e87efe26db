package models

// MessageResponse is the JSON body used for errors and for plain
// informational replies such as logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadedImage describes an image stored by the image upload service.
type UploadedImage struct {
	// URL is the publicly reachable (https) address of the image.
	URL string

	// PublicID is the provider-side identifier (object key, public id).
	PublicID string
}
