// internal/config/s3.go
package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 configuration
type S3Config struct {
	Client        *s3.Client
	Bucket        string
	PublicBaseURL string
}

// NewS3Config creates a client for settings. It returns nil, nil when no
// bucket is configured.
func NewS3Config(ctx context.Context, settings S3Settings) (*S3Config, error) {
	if !settings.Enabled() {
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(settings.Region)}
	if settings.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.AccessKeyID,
			settings.SecretAccessKey,
			"",
		)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:        s3.NewFromConfig(cfg),
		Bucket:        settings.Bucket,
		PublicBaseURL: settings.PublicBaseURL,
	}, nil
}
