package mocks

import (
	"context"
	"io"

	"artifact-store/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

var (
	_ storage.Client = (*Client)(nil)
	_ storage.Core   = (*Core)(nil)
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	args := m.Called(ctx, bucketName, opts)
	if ch, ok := args.Get(0).(<-chan minio.ObjectInfo); ok {
		return ch
	}
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func (m *Client) FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, filePath, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *Client) FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, filePath, opts)
	return args.Error(0)
}

// Core is a mock implementation of storage.Core
type Core struct {
	mock.Mock
}

func (m *Core) PutObject(ctx context.Context, bucket, object string, data io.Reader, size int64, md5Base64, sha256Hex string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucket, object, data, size, md5Base64, sha256Hex, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

// Objects returns a closed channel pre-filled with the given listing results.
func Objects(items ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(items))
	for _, item := range items {
		ch <- item
	}
	close(ch)
	return ch
}

// Registry returns a storage.Registry that hands out the given mocks without
// touching the environment.
func Registry(client *Client, core *Core) *storage.Registry {
	return storage.NewRegistry(storage.Config{},
		storage.WithLookup(func(string) (string, bool) { return "test", true }),
		storage.WithBuilder(func(storage.Credentials, storage.Config) (*storage.Handles, error) {
			return &storage.Handles{Client: client, Core: core}, nil
		}),
	)
}
