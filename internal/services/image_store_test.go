package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = input
	b, _ := io.ReadAll(input.Body)
	f.body = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{}, nil
}

func TestS3ImageStoreUploadKeyAndURL(t *testing.T) {
	up := &fakeUploader{}
	store := &S3ImageStore{
		uploader:      up,
		bucket:        "fyyur",
		publicBaseURL: "https://cdn.example.com/",
		newID:         func() string { return "abc" },
	}

	url, err := store.Upload(context.Background(), "venues", "hall.PNG", "image/png", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/venues/abc.png", url)
	assert.Equal(t, "fyyur", aws.ToString(up.input.Bucket))
	assert.Equal(t, "venues/abc.png", aws.ToString(up.input.Key))
	assert.Equal(t, "image/png", aws.ToString(up.input.ContentType))
	assert.Equal(t, "data", up.body)
}

func TestS3ImageStoreUploadError(t *testing.T) {
	store := &S3ImageStore{
		uploader: &fakeUploader{err: errors.New("denied")},
		bucket:   "fyyur",
		newID:    func() string { return "abc" },
	}

	_, err := store.Upload(context.Background(), "artists", "a.jpg", "image/jpeg", strings.NewReader(""))
	assert.ErrorContains(t, err, "artists/abc.jpg")
}
