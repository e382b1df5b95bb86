package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/janvolk/lostfound/internal/config"
)

// keyPrefix namespaces all hosted photos within the bucket.
const keyPrefix = "items/"

// Uploader stores a photo on a remote image host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

// S3Uploader uploads photos to an S3-compatible object store.
type S3Uploader struct {
	client *s3.Client
	cfg    config.S3Config
}

// NewS3Uploader creates an uploader for the configured bucket. A custom
// endpoint switches the client to path-style addressing (MinIO and friends).
// The bucket is created if it doesn't exist yet.
func NewS3Uploader(ctx context.Context, cfg config.S3Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	u := &S3Uploader{client: client, cfg: cfg}

	if err := u.ensureBucket(ctx); err != nil {
		slog.Warn("failed to ensure bucket exists", "bucket", cfg.Bucket, "error", err)
	}

	return u, nil
}

// ensureBucket creates the bucket if it doesn't already exist.
func (u *S3Uploader) ensureBucket(ctx context.Context) error {
	_, err := u.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(u.cfg.Bucket),
	})
	if err == nil {
		return nil
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(u.cfg.Bucket)}
	// us-east-1 must not carry a location constraint.
	if u.cfg.Region != "" && u.cfg.Region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(u.cfg.Region),
		}
	}

	if _, err := u.client.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("creating bucket %s: %w", u.cfg.Bucket, err)
	}

	slog.Info("bucket created", "bucket", u.cfg.Bucket)
	return nil
}

// Upload stores the photo under a fresh object key and returns its public
// URL. Errors propagate to the caller; there is no local fallback.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := objectKey(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("uploading photo: %w", err)
	}

	url := publicURL(u.cfg, key)
	slog.Info("photo uploaded", "key", key, "size", len(data))
	return url, nil
}

// objectKey builds a unique object key, keeping the original file extension.
func objectKey(filename string) string {
	return keyPrefix + uuid.New().String() + strings.ToLower(path.Ext(filename))
}

// publicURL derives the publicly reachable URL of an uploaded object. With a
// custom endpoint the path-style form is used; plain AWS gets the
// virtual-hosted form.
func publicURL(cfg config.S3Config, key string) string {
	if cfg.Endpoint != "" {
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.Bucket, cfg.Region, key)
}
