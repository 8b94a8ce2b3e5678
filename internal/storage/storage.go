package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Storage persists uploaded files and returns a durable URL for them.
type Storage interface {
	// Save stores the content at key and returns its public URL.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// Delete removes the object at key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

// Config holds storage configuration
type Config struct {
	Type      string // local, s3
	BasePath  string // For local storage
	BaseURL   string // Public URL base
	Bucket    string // For S3
	Region    string // For S3
	AccessKey string // For S3
	SecretKey string // For S3
	Endpoint  string // For S3-compatible providers
}

// New creates a storage backend based on configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
