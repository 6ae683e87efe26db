package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/utils"
	"github.com/MKhiriev/go-auth-server/models"
)

const defaultCloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

type cloudinaryUploader struct {
	client *utils.HTTPClient
	cfg    config.Cloudinary
	now    func() time.Time
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type cloudinaryErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinaryUploader constructs an [ImageUploader] using the Cloudinary
// signed upload API (POST {base}/{cloud}/image/upload). Data URIs, base64
// and remote http(s) URLs are all accepted; Cloudinary fetches the latter
// itself.
func NewCloudinaryUploader(cfg config.Cloudinary, timeout time.Duration, log *logger.Logger) ImageUploader {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultCloudinaryBaseURL
	}

	log.Debug().Str("cloud", cfg.CloudName).Msg("creating cloudinary uploader")

	return &cloudinaryUploader{
		client: utils.NewHTTPClient(baseURL, timeout),
		cfg:    cfg,
		now:    time.Now,
	}
}

func (c *cloudinaryUploader) Upload(ctx context.Context, userID, payload string) (models.UploadedImage, error) {
	log := logger.FromContext(ctx)

	img, err := ParseImagePayload(payload)
	if err != nil {
		return models.UploadedImage{}, err
	}

	file := img.URL
	if !img.IsRemote() {
		file = img.DataURI()
	}

	params := map[string]string{
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	if c.cfg.Folder != "" {
		params["folder"] = c.cfg.Folder
	}

	form := make(map[string]string, len(params)+3)
	for k, v := range params {
		form[k] = v
	}
	form["file"] = file
	form["api_key"] = c.cfg.APIKey
	form["signature"] = c.sign(params)

	var (
		result cloudinaryUploadResponse
		apiErr cloudinaryErrorResponse
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&result).
		SetError(&apiErr).
		Post("/" + url.PathEscape(c.cfg.CloudName) + "/image/upload")
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryUploader.Upload").Str("user_id", userID).Msg("upload request failed")
		return models.UploadedImage{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err = mapHTTPError(resp, apiErr.Error.Message); err != nil {
		log.Err(err).Str("func", "*cloudinaryUploader.Upload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return models.UploadedImage{}, err
	}
	if result.SecureURL == "" {
		return models.UploadedImage{}, fmt.Errorf("%w: response carries no secure_url", ErrUploadFailed)
	}

	log.Info().Str("user_id", userID).Str("public_id", result.PublicID).Msg("profile picture uploaded")

	return models.UploadedImage{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// sign computes the Cloudinary request signature: the signed parameters
// sorted by name, joined as "k=v&k=v", suffixed with the API secret and
// hashed with SHA-1.
func (c *cloudinaryUploader) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.cfg.APISecret))
	return hex.EncodeToString(sum[:])
}
