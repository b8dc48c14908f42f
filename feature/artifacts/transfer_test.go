package artifacts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"artifact-store/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, ev TransferEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestBucket_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesLocalByDefault", func(t *testing.T) {
		b, client, _ := setupBucket(t, Config{}, nil)
		path := writeTemp(t, "model.pt", []byte("weights"))
		client.On("FPutObject", mock.Anything, testBucket, "models/model.pt", path, mock.Anything).
			Return(minio.UploadInfo{Size: 7}, nil)

		require.NoError(t, b.Upload(ctx, path, "models/model.pt"))
		assert.NoFileExists(t, path)
	})

	t.Run("KeepLocal", func(t *testing.T) {
		b, client, _ := setupBucket(t, Config{}, nil)
		path := writeTemp(t, "model.pt", []byte("weights"))
		client.On("FPutObject", mock.Anything, testBucket, "models/model.pt", path, mock.Anything).
			Return(minio.UploadInfo{Size: 7}, nil)

		require.NoError(t, b.Upload(ctx, path, "models/model.pt", KeepLocal()))
		assert.FileExists(t, path)
	})

	t.Run("ContentTypeDetected", func(t *testing.T) {
		b, client, _ := setupBucket(t, Config{}, nil)
		path := writeTemp(t, "report.json", []byte(`{"loss": 0.1}`))
		client.On("FPutObject", mock.Anything, testBucket, "eval/report.json", path,
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
				return opts.ContentType == "application/json"
			})).Return(minio.UploadInfo{}, nil)

		require.NoError(t, b.Upload(ctx, path, "eval/report.json", KeepLocal()))
		client.AssertExpectations(t)
	})

	t.Run("FailureKeepsLocal", func(t *testing.T) {
		b, client, _ := setupBucket(t, Config{}, nil)
		path := writeTemp(t, "model.pt", []byte("weights"))
		client.On("FPutObject", mock.Anything, testBucket, "models/model.pt", path, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("connection refused"))

		err := b.Upload(ctx, path, "models/model.pt")
		assert.ErrorIs(t, err, storage.ErrTransfer)
		assert.FileExists(t, path)
	})

	t.Run("MissingLocalFile", func(t *testing.T) {
		b, client, _ := setupBucket(t, Config{}, nil)

		err := b.Upload(ctx, filepath.Join(t.TempDir(), "nope.pt"), "models/model.pt")
		assert.ErrorIs(t, err, storage.ErrTransfer)
		client.AssertNotCalled(t, "FPutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RecordsTransfer", func(t *testing.T) {
		rec := new(mockRecorder)
		b, client, _ := setupBucket(t, Config{}, rec)
		path := writeTemp(t, "model.pt", []byte("weights"))
		client.On("FPutObject", mock.Anything, testBucket, "model.pt", path, mock.Anything).
			Return(minio.UploadInfo{Size: 7, ETag: "etag"}, nil)
		rec.On("Record", mock.Anything, mock.MatchedBy(func(ev TransferEvent) bool {
			return ev.Direction == DirectionUpload && ev.Bucket == testBucket && ev.Key == "model.pt" &&
				ev.Size == 7 && ev.ETag == "etag" && !ev.At.IsZero()
		})).Return(nil)

		require.NoError(t, b.Upload(ctx, path, "model.pt", KeepLocal()))
		rec.AssertExpectations(t)
	})

	t.Run("RecorderFailureIgnored", func(t *testing.T) {
		rec := new(mockRecorder)
		b, client, _ := setupBucket(t, Config{}, rec)
		path := writeTemp(t, "model.pt", []byte("weights"))
		client.On("FPutObject", mock.Anything, testBucket, "model.pt", path, mock.Anything).Return(minio.UploadInfo{}, nil)
		rec.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down"))

		assert.NoError(t, b.Upload(ctx, path, "model.pt"))
	})
}

func TestBucket_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsLocalPath", func(t *testing.T) {
		b, client, _ := setupBucket(t, Config{}, nil)
		dest := filepath.Join(t.TempDir(), "dataset.zip")
		client.On("FGetObject", mock.Anything, testBucket, "dataset.zip", dest, mock.Anything).
			Run(func(args mock.Arguments) {
				_ = os.WriteFile(args.String(3), []byte("zip"), 0o644)
			}).Return(nil)

		got, err := b.Download(ctx, "dataset.zip", dest)
		require.NoError(t, err)
		assert.Equal(t, dest, got)
	})

	t.Run("Failure", func(t *testing.T) {
		b, client, _ := setupBucket(t, Config{}, nil)
		client.On("FGetObject", mock.Anything, testBucket, "missing.zip", mock.Anything, mock.Anything).Return(notFound)

		_, err := b.Download(ctx, "missing.zip", filepath.Join(t.TempDir(), "missing.zip"))
		assert.ErrorIs(t, err, storage.ErrTransfer)
		assert.True(t, storage.IsNotFound(err))
	})
}

func TestBucket_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b, client, _ := setupBucket(t, Config{}, nil)

	remote := map[string][]byte{}
	client.On("FPutObject", mock.Anything, testBucket, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := os.ReadFile(args.String(3))
			require.NoError(t, err)
			remote[args.String(2)] = data
		}).Return(minio.UploadInfo{}, nil)
	client.On("FGetObject", mock.Anything, testBucket, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, os.WriteFile(args.String(3), remote[args.String(2)], 0o644))
		}).Return(nil)

	payload := []byte{0x00, 0x10, 0xff, 'o', 'k', '\n'}
	src := writeTemp(t, "blob.bin", payload)
	require.NoError(t, b.Upload(ctx, src, "blobs/blob.bin"))

	dest := filepath.Join(t.TempDir(), "blob.bin")
	got, err := b.Download(ctx, "blobs/blob.bin", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}
