package storage

//go:generate mockgen -package=mocks -destination=mocks/mock_uploader.go github.com/KirkDiggler/swiss/internal/storage Uploader

import (
	"context"
	"io"
)

// UploadResult describes a stored object
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// Uploader puts objects into a bucket
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (*UploadResult, error)

	PublicURL(key string) string
}
