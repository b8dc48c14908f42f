package artifacts

import (
	"context"
	"time"

	"artifact-store/core/storage"

	"go.uber.org/zap"
)

// Bucket is a named scope over the shared handles. It is cheap to create and
// carries no state of its own.
type Bucket struct {
	name     string
	client   storage.Client
	core     storage.Core
	logger   *zap.Logger
	recorder Recorder
	cfg      Config
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

func (b *Bucket) record(ctx context.Context, ev TransferEvent) {
	if b.recorder == nil {
		return
	}
	ev.Bucket = b.name
	ev.At = time.Now().UTC()
	if err := b.recorder.Record(ctx, ev); err != nil {
		b.logger.Warn("Failed to record transfer",
			zap.String("direction", string(ev.Direction)),
			zap.String("key", ev.Key),
			zap.Error(err))
	}
}
