package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"showbook/internal/config"
)

// ImageStore stores an uploaded image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error)
}

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type S3ImageStore struct {
	uploader      objectUploader
	bucket        string
	publicBaseURL string
	newID         func() string
}

func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		uploader:      manager.NewUploader(cfg.Client),
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		newID:         uuid.NewString,
	}
}

// Upload writes body under prefix/<uuid><ext>.
func (s *S3ImageStore) Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
	key := path.Join(prefix, s.newID()+strings.ToLower(filepath.Ext(filename)))

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return strings.TrimRight(s.publicBaseURL, "/") + "/" + key, nil
}
