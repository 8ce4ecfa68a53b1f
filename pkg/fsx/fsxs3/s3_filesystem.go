package fsxs3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileSystem implements fsx.FileSystem and fsx.Presigner on top of an
// S3 bucket with an optional key prefix.
type S3FileSystem struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	prefix  string
}

// NewS3FileSystem creates a bucket-scoped filesystem.
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
	}
}

func (f *S3FileSystem) fullKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if f.prefix == "" {
		return key
	}
	if strings.HasPrefix(key, f.prefix+"/") {
		return key
	}
	return f.prefix + "/" + key
}

// WriteFile stores data under key, overwriting any existing object.
func (f *S3FileSystem) WriteFile(ctx context.Context, key string, data []byte) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(key)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// ReadFileStream opens the object for streaming reads.
func (f *S3FileSystem) ReadFileStream(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(key)),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	return out.Body, nil
}

// DeleteFile removes the object. S3 treats deleting a missing key as success.
func (f *S3FileSystem) DeleteFile(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(key)),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}

// Join builds a storage key from path segments.
func (f *S3FileSystem) Join(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "/")
}

// PresignGet issues a time-limited retrieval URL for key.
func (f *S3FileSystem) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := f.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(key)),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", key, err)
	}
	return req.URL, nil
}
