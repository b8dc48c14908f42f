package artifacts

import (
	"context"
	"time"

	"artifact-store/core/storage"

	"go.uber.org/zap"
)

// Direction tells uploads and downloads apart in the transfer ledger.
type Direction string

const (
	DirectionUpload   Direction = "upload"
	DirectionDownload Direction = "download"
)

// TransferEvent describes one completed file transfer.
type TransferEvent struct {
	Direction Direction
	Bucket    string
	Key       string
	LocalPath string
	Size      int64
	ETag      string
	At        time.Time
}

// Recorder persists completed transfers.
type Recorder interface {
	Record(ctx context.Context, ev TransferEvent) error
}

// Service hands out bucket handles built on the shared storage registry.
type Service struct {
	registry *storage.Registry
	logger   *zap.Logger
	recorder Recorder
	cfg      Config
}

// NewService creates a new artifact service. recorder may be nil.
func NewService(registry *storage.Registry, logger *zap.Logger, recorder Recorder, cfg Config) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
		recorder: recorder,
		cfg:      cfg,
	}
}

// Bucket returns a handle scoped to the named bucket.
// It performs no I/O beyond building the shared handles on first use.
func (s *Service) Bucket(name string) (*Bucket, error) {
	if name == "" {
		return nil, storage.NewError(storage.KindUnknown, "get-bucket", "", "", storage.ErrInvalidInput)
	}

	h, err := s.registry.GetOrInit()
	if err != nil {
		return nil, err
	}

	return &Bucket{
		name:     name,
		client:   h.Client,
		core:     h.Core,
		logger:   s.logger.With(zap.String("bucket", name)),
		recorder: s.recorder,
		cfg:      s.cfg,
	}, nil
}
