package artifacts

import (
	"bytes"
	"context"

	"artifact-store/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FolderMarker returns the key of the zero-length object standing for a folder.
func FolderMarker(name string) string {
	return name + "/"
}

// EnsureFolder creates the folder marker name+"/" unless the folder exists.
// The folder exists when an object named exactly name or the marker itself is
// found. Only a not-found answer leads to creation; any other probe failure is
// returned as a KindProbe error, or ignored when SuppressProbeErrors is set.
func (b *Bucket) EnsureFolder(ctx context.Context, name string) error {
	if name == "" {
		return storage.NewError(storage.KindFolder, "ensure-folder", b.name, "", storage.ErrInvalidInput)
	}

	marker := FolderMarker(name)
	for _, key := range []string{name, marker} {
		found, err := b.probe(ctx, key)
		if err != nil {
			if b.cfg.SuppressProbeErrors {
				b.logger.Warn("Folder probe failed, assuming folder exists", zap.String("folder", name), zap.Error(err))
				return nil
			}
			return storage.NewError(storage.KindProbe, "ensure-folder", b.name, key, err)
		}
		if found {
			b.logger.Debug("Folder exists", zap.String("folder", name), zap.String("key", key))
			return nil
		}
	}

	_, err := b.core.PutObject(ctx, b.name, marker, bytes.NewReader([]byte{}), 0, "", "", minio.PutObjectOptions{})
	if err != nil {
		b.logger.Error("Failed to create folder", zap.String("folder", name), zap.Error(err))
		return storage.NewError(storage.KindFolder, "ensure-folder", b.name, marker, err)
	}

	b.logger.Info("Created missing folder", zap.String("folder", name))
	return nil
}

// probe reports whether key exists. A not-found answer is not an error.
func (b *Bucket) probe(ctx context.Context, key string) (bool, error) {
	_, err := b.client.StatObject(ctx, b.name, key, minio.StatObjectOptions{})
	switch {
	case err == nil:
		return true, nil
	case storage.IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}
