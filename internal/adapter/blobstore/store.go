// Package blobstore stores listing images behind gocloud.dev/blob so the
// same code runs against local disk, S3 or an in-memory bucket.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Store wraps a bucket and the base URL objects are publicly served from.
type Store struct {
	bucket  *blob.Bucket
	baseURL string
}

// Open opens the bucket described by bucketURL and checks that it is reachable.
func Open(ctx context.Context, bucketURL, publicBaseURL string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("blobstore: open bucket %s: %w", bucketURL, err)
	}

	ok, err := bucket.IsAccessible(ctx)
	if err != nil {
		_ = bucket.Close()
		return nil, fmt.Errorf("blobstore: check bucket %s: %w", bucketURL, err)
	}
	if !ok {
		_ = bucket.Close()
		return nil, fmt.Errorf("blobstore: bucket %s is not accessible", bucketURL)
	}

	return New(bucket, publicBaseURL), nil
}

// New wraps an already opened bucket.
func New(bucket *blob.Bucket, publicBaseURL string) *Store {
	return &Store{bucket: bucket, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Upload writes data under key and returns its public URL.
func (s *Store) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return "", fmt.Errorf("blobstore.Upload %s: %w: %w", key, domain.ErrUpstream, err)
	}
	return s.URL(key), nil
}

// Delete removes the object. A missing object is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		return fmt.Errorf("blobstore.Delete %s: %w: %w", key, domain.ErrUpstream, err)
	}
	return nil
}

// Object is an opened stored image.
type Object struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// Open returns a reader for key. A missing object yields ErrNotFound.
func (s *Store) Open(ctx context.Context, key string) (*Object, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, fmt.Errorf("image %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("blobstore.Open %s: %w: %w", key, domain.ErrUpstream, err)
	}
	return &Object{ReadCloser: r, ContentType: r.ContentType(), Size: r.Size()}, nil
}

// URL builds the public URL for key.
func (s *Store) URL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.baseURL + "/" + strings.Join(parts, "/")
}

// Ping reports an error when the bucket is not reachable.
func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return fmt.Errorf("blobstore.Ping: %w: %w", domain.ErrUpstream, err)
	}
	if !ok {
		return fmt.Errorf("blobstore.Ping: %w: bucket not accessible", domain.ErrUpstream)
	}
	return nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}
