package storage_test

import (
	"context"
	"errors"
	"testing"

	"catalog-sync/core/storage"
	"catalog-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "catalog-backups",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestMirror_Upload(t *testing.T) {
	client := &mocks.Client{}
	client.On("PutObject", mock.Anything, "catalog-backups", "products-20260101-000000.json",
		mock.Anything, int64(15), mock.Anything).
		Return(minio.UploadInfo{Size: 15}, nil)

	m := storage.NewMirror(client, "catalog-backups")
	err := m.Upload(context.Background(), "products-20260101-000000.json", []byte(`{"products":[]}`))
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestMirror_UploadFailure(t *testing.T) {
	client := &mocks.Client{}
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	m := storage.NewMirror(client, "catalog-backups")
	err := m.Upload(context.Background(), "snapshot.json", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket gone")
}
