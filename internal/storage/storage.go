package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the media backend behind uploads. Keys are opaque to callers
// and returned to clients as the upload's public id.
type Storage interface {
	// Save stores an object under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get opens an object for reading.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for an object.
	GetURL(ctx context.Context, key string) (string, error)

	// GetSignedURL returns a temporary signed URL for private objects.
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// GetSize returns the object size in bytes.
	GetSize(ctx context.Context, key string) (int64, error)
}

// Config holds storage configuration for all backends.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3
	Region    string // for S3
	AccessKey string // for S3
	SecretKey string // for S3
	Endpoint  string // for R2 or custom S3 endpoints
}

// NewStorage builds the backend selected by cfg.Type.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
