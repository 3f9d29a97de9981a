package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Mirror replicates store snapshots to an object storage bucket. Uploads are
// best effort; the store treats mirror failures as warnings, never as run
// failures.
type Mirror struct {
	client Client
	bucket string
}

// NewMirror creates a mirror writing into the given bucket.
func NewMirror(client Client, bucket string) *Mirror {
	return &Mirror{client: client, bucket: bucket}
}

// Upload stores data under objectName in the mirror bucket.
func (m *Mirror) Upload(ctx context.Context, objectName string, data []byte) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to mirror %s: %w", objectName, err)
	}
	return nil
}
