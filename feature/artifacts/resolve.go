package artifacts

import (
	"context"
	"time"

	"artifact-store/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Object identifies one stored object.
type Object struct {
	Bucket       string    `json:"bucket"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Resolution is the result of a prefix lookup. Exactly one match is a single
// object; any other count, zero included, is a list.
type Resolution struct {
	objects []Object
}

// Single returns the matched object when exactly one object matched.
func (r Resolution) Single() (Object, bool) {
	if len(r.objects) != 1 {
		return Object{}, false
	}
	return r.objects[0], true
}

// Many returns the matches, in backend order, unless exactly one object matched.
// A lookup without matches yields an empty, non-nil slice.
func (r Resolution) Many() ([]Object, bool) {
	if len(r.objects) == 1 {
		return nil, false
	}
	if r.objects == nil {
		return []Object{}, true
	}
	return r.objects, true
}

// Len returns the number of matches.
func (r Resolution) Len() int {
	return len(r.objects)
}

// Objects returns every match regardless of shape.
func (r Resolution) Objects() []Object {
	return r.objects
}

// Resolve lists the objects whose key starts with prefix. The prefix is
// matched literally; the backend listing order is kept.
func (b *Bucket) Resolve(ctx context.Context, prefix string) (Resolution, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var objects []Object
	for info := range b.client.ListObjects(ctx, b.name, opts) {
		if info.Err != nil {
			return Resolution{}, storage.NewError(storage.KindResolution, "resolve", b.name, prefix, info.Err)
		}
		objects = append(objects, Object{
			Bucket:       b.name,
			Key:          info.Key,
			Size:         info.Size,
			ETag:         info.ETag,
			LastModified: info.LastModified,
		})
	}

	b.logger.Debug("Resolved prefix", zap.String("prefix", prefix), zap.Int("matches", len(objects)))
	return Resolution{objects: objects}, nil
}
