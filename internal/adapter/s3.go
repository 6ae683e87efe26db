package adapter

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/utils"
	"github.com/MKhiriev/go-auth-server/models"
)

const profilePicPrefix = "profile-pics"

// objectPutter is the part of *s3.Client used by the uploader.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Uploader struct {
	client  objectPutter
	cfg     config.S3
	timeout time.Duration
	ids     *utils.UUIDGenerator
}

// NewS3Uploader constructs an [ImageUploader] storing decoded images in an
// S3 compatible bucket. Static credentials are used when configured,
// otherwise the default AWS credential chain applies. Remote URL payloads
// are rejected: the bucket cannot fetch them.
func NewS3Uploader(ctx context.Context, cfg config.S3, timeout time.Duration, log *logger.Logger) (ImageUploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3Uploader").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Debug().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("creating s3 uploader")

	return newS3Uploader(client, cfg, timeout), nil
}

func newS3Uploader(client objectPutter, cfg config.S3, timeout time.Duration) *s3Uploader {
	return &s3Uploader{
		client:  client,
		cfg:     cfg,
		timeout: timeout,
		ids:     utils.NewUUIDGenerator(),
	}
}

func (u *s3Uploader) Upload(ctx context.Context, userID, payload string) (models.UploadedImage, error) {
	log := logger.FromContext(ctx)

	img, err := ParseImagePayload(payload)
	if err != nil {
		return models.UploadedImage{}, err
	}
	if img.IsRemote() {
		return models.UploadedImage{}, fmt.Errorf("%w: remote URLs are not supported by the s3 backend", ErrInvalidImagePayload)
	}

	key := path.Join(profilePicPrefix, userID, u.ids.Generate()+img.Extension)

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentType:   aws.String(img.MIME),
		ContentLength: aws.Int64(int64(len(img.Data))),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Uploader.Upload").Str("key", key).Msg("put object failed")
		return models.UploadedImage{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	log.Info().Str("user_id", userID).Str("key", key).Msg("profile picture uploaded")

	return models.UploadedImage{
		URL:      strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key,
		PublicID: key,
	}, nil
}
