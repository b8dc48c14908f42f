package artifacts

import (
	"context"
	"os"

	"artifact-store/core/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type uploadConfig struct {
	removeLocal bool
}

// UploadOption customizes Upload.
type UploadOption func(*uploadConfig)

// KeepLocal leaves the local file in place after a successful upload.
func KeepLocal() UploadOption {
	return func(c *uploadConfig) {
		c.removeLocal = false
	}
}

// Upload stores the local file at key and, unless KeepLocal is given, deletes
// the local file afterwards. A failure at any stage, local removal included,
// is reported as a KindTransfer error.
func (b *Bucket) Upload(ctx context.Context, localPath, key string, opts ...UploadOption) error {
	cfg := uploadConfig{removeLocal: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if localPath == "" || key == "" {
		return storage.NewError(storage.KindTransfer, "upload", b.name, key, storage.ErrInvalidInput)
	}

	mtype, err := mimetype.DetectFile(localPath)
	if err != nil {
		return storage.NewError(storage.KindTransfer, "upload", b.name, key, err)
	}

	b.logger.Info("Uploading file", zap.String("from", localPath), zap.String("to", key))

	info, err := b.client.FPutObject(ctx, b.name, key, localPath, minio.PutObjectOptions{
		ContentType: mtype.String(),
	})
	if err != nil {
		return storage.NewError(storage.KindTransfer, "upload", b.name, key, err)
	}

	b.logger.Info("Uploaded file", zap.String("from", localPath), zap.String("to", key), zap.Int64("size", info.Size))
	b.record(ctx, TransferEvent{
		Direction: DirectionUpload,
		Key:       key,
		LocalPath: localPath,
		Size:      info.Size,
		ETag:      info.ETag,
	})

	if !cfg.removeLocal {
		b.logger.Debug("Keeping local file", zap.String("path", localPath))
		return nil
	}
	if err := os.Remove(localPath); err != nil {
		return storage.NewError(storage.KindTransfer, "remove-local", b.name, key, err)
	}
	b.logger.Debug("Removed local file", zap.String("path", localPath))
	return nil
}

// Download writes the object at key to localPath, replacing any existing
// file, and returns localPath.
func (b *Bucket) Download(ctx context.Context, key, localPath string) (string, error) {
	if key == "" || localPath == "" {
		return "", storage.NewError(storage.KindTransfer, "download", b.name, key, storage.ErrInvalidInput)
	}

	if err := b.client.FGetObject(ctx, b.name, key, localPath, minio.GetObjectOptions{}); err != nil {
		return "", storage.NewError(storage.KindTransfer, "download", b.name, key, err)
	}

	var size int64
	if fi, err := os.Stat(localPath); err == nil {
		size = fi.Size()
	}

	b.logger.Info("Downloaded file", zap.String("from", key), zap.String("to", localPath), zap.Int64("size", size))
	b.record(ctx, TransferEvent{
		Direction: DirectionDownload,
		Key:       key,
		LocalPath: localPath,
		Size:      size,
	})
	return localPath, nil
}
