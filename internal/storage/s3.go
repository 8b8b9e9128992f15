package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultRegion is used for S3-compatible stores, such as R2, that ignore regions
const DefaultRegion = "auto"

var ErrInvalidConfig = errors.New("invalid object storage configuration: bucket, access key and secret are required")

// S3UploaderConfig configures an uploader for S3 or an S3-compatible store
type S3UploaderConfig struct {
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string

	// Endpoint overrides the AWS endpoint, e.g. https://<account>.r2.cloudflarestorage.com
	Endpoint string

	// Region defaults to DefaultRegion
	Region string

	// PublicBaseURL prefixes object keys to form public links; optional
	PublicBaseURL string

	// UsePathStyle addresses the bucket in the path, which MinIO needs
	UsePathStyle bool
}

// putObjectAPI is the slice of the S3 client the uploader uses
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Uploader struct {
	client        putObjectAPI
	bucket        string
	publicBaseURL string
}

// NewS3Uploader builds an uploader on the AWS SDK with static credentials
func NewS3Uploader(ctx context.Context, cfg S3UploaderConfig) (Uploader, error) {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, ErrInvalidConfig
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	sdkCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3Uploader(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

func newS3Uploader(client putObjectAPI, bucket, publicBaseURL string) *s3Uploader {
	return &s3Uploader{
		client:        client,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}
}

// Upload puts body under key and returns where it can be fetched
func (u *s3Uploader) Upload(ctx context.Context, key string, contentType string, body io.Reader) (*UploadResult, error) {
	result, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object (key: %s): %w", key, err)
	}

	etag := ""
	if result.ETag != nil {
		// S3-compatible APIs quote the ETag
		etag = strings.Trim(*result.ETag, "\"")
	}

	return &UploadResult{
		Key:      key,
		Location: u.PublicURL(key),
		ETag:     etag,
	}, nil
}

// PublicURL joins the public base URL and key. Empty when no base is configured.
func (u *s3Uploader) PublicURL(key string) string {
	if u.publicBaseURL == "" || key == "" {
		return ""
	}

	location, err := url.JoinPath(u.publicBaseURL, key)
	if err != nil {
		return ""
	}
	return location
}
