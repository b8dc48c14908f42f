package artifacts

import (
	"context"
	"fmt"

	"artifact-store/core/storage"

	"go.uber.org/zap"
)

// ModelKey joins dir and name with a single "/". An empty dir yields name.
// Repeated separators are kept as given.
func ModelKey(name, dir string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// LoadModel fetches the raw bytes of a model file. The composed key is
// resolved as a prefix and must match exactly one object.
func (b *Bucket) LoadModel(ctx context.Context, name, dir string) ([]byte, error) {
	if name == "" {
		return nil, storage.NewError(storage.KindResolution, "load-model", b.name, "", storage.ErrInvalidInput)
	}
	key := ModelKey(name, dir)

	res, err := b.Resolve(ctx, key)
	if err != nil {
		return nil, err
	}

	obj, ok := res.Single()
	if !ok {
		if res.Len() == 0 {
			return nil, storage.NewError(storage.KindResolution, "load-model", b.name, key, storage.ErrModelNotFound)
		}
		return nil, storage.NewError(storage.KindResolution, "load-model", b.name, key,
			fmt.Errorf("%w: %d matches", storage.ErrAmbiguousModel, res.Len()))
	}

	p, err := b.Read(ctx, obj, WithoutDecode())
	if err != nil {
		return nil, err
	}

	b.logger.Info("Loaded model", zap.String("key", obj.Key), zap.Int64("size", obj.Size))
	return []byte(p.(Binary)), nil
}
