// Package blobstore stores uploaded media in a MinIO bucket and hands back
// publicly reachable URLs.
package blobstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store wraps a MinIO client and a target bucket.
type Store struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// New connects to MinIO and ensures the bucket exists.
func New(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &Store{client: client, bucket: bucket, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

// Save stores raw bytes under a generated object name and returns its URL.
// The path hint contributes a folder and extension, e.g. "avatars/x.png".
func (s *Store) Save(ctx context.Context, data []byte, pathHint, contentType string) (string, error) {
	objectName := objectNameFor(pathHint)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + s.bucket + "/" + objectName, nil
}

// SaveDataURI decodes a base64 data URI and stores it. Only image/png and
// image/jpeg payloads are accepted.
func (s *Store) SaveDataURI(ctx context.Context, dataURI, pathHint string) (string, error) {
	contentType, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	return s.Save(ctx, data, pathHint, contentType)
}

// DecodeDataURI splits a "data:image/png;base64,..." URI into its content
// type and payload. Rejects anything that is not a png or jpeg image.
func DecodeDataURI(dataURI string) (contentType string, data []byte, err error) {
	const prefix = "data:"
	if !strings.HasPrefix(dataURI, prefix) {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(dataURI[len(prefix):], ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	if contentType != "image/png" && contentType != "image/jpeg" {
		return "", nil, fmt.Errorf("unsupported content type %q", contentType)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return contentType, data, nil
}

func objectNameFor(pathHint string) string {
	folder := ""
	ext := ""
	if idx := strings.LastIndex(pathHint, "/"); idx >= 0 {
		folder = pathHint[:idx+1]
		pathHint = pathHint[idx+1:]
	}
	if idx := strings.LastIndex(pathHint, "."); idx >= 0 {
		ext = pathHint[idx:]
	}
	return folder + uuid.NewString() + ext
}
