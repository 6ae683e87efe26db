// Package adapter holds the clients of outbound third-party services.
// Currently that is the image upload service backing profile pictures,
// with a Cloudinary and an S3 implementation of [ImageUploader].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_uploader_mock.go -package=mock

// ImageUploader stores an image and returns its hosted URL.
//
// payload is what the client sent as profilePic: a data URI
// ("data:image/png;base64,..."), bare base64 image bytes, or, where the
// provider supports fetching, an http(s) URL of an existing image.
//
// Errors:
//   - [ErrInvalidImagePayload] when payload is not an image the provider accepts;
//   - [ErrUploadFailed] (wrapping the cause) when the provider call fails.
type ImageUploader interface {
	Upload(ctx context.Context, userID, payload string) (models.UploadedImage, error)
}
