package storage

import (
	"context"
	"io"
)

// Storage defines the minimal interface for object storage backends.
type Storage interface {
	// Put stores an object at the given key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes an object by key. Returns nil if the object doesn't exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for an object given its key.
	GetURL(key string) string
}

// Config holds S3-compatible storage configuration (AWS S3, R2, MinIO).
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}
