package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"artifact-store/feature/artifacts"

	"go.uber.org/zap"
)

// Stages runs the storage side of the pipeline stages against one bucket.
type Stages struct {
	bucket *artifacts.Bucket
	cfg    Config
	logger *zap.Logger
}

// New creates the stages for the given bucket.
func New(svc *artifacts.Service, bucket string, cfg Config, logger *zap.Logger) (*Stages, error) {
	if cfg.Bucket != "" {
		bucket = cfg.Bucket
	}
	b, err := svc.Bucket(bucket)
	if err != nil {
		return nil, err
	}
	return &Stages{bucket: b, cfg: cfg, logger: logger.With(zap.String("stage_bucket", b.Name()))}, nil
}

// Ingest downloads the dataset archive into the ingestion directory.
func (s *Stages) Ingest(ctx context.Context) (string, error) {
	dest := s.cfg.ArchivePath()
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create ingestion directory: %w", err)
	}

	s.logger.Info("Ingesting dataset", zap.String("key", s.cfg.DatasetArchive), zap.String("dest", dest))
	return s.bucket.Download(ctx, s.cfg.DatasetArchive, dest)
}

// Push uploads the trained model, creating its remote folder first.
func (s *Stages) Push(ctx context.Context, keepLocal bool) error {
	if s.cfg.ModelDir != "" {
		if err := s.bucket.EnsureFolder(ctx, s.cfg.ModelDir); err != nil {
			return err
		}
	}

	var opts []artifacts.UploadOption
	if keepLocal {
		opts = append(opts, artifacts.KeepLocal())
	}

	s.logger.Info("Pushing model", zap.String("key", s.cfg.ModelKey()), zap.Bool("keep_local", keepLocal))
	return s.bucket.Upload(ctx, s.cfg.TrainedModelPath(), s.cfg.ModelKey(), opts...)
}

// FetchModel loads the stored model and writes it to the evaluation directory.
func (s *Stages) FetchModel(ctx context.Context) (string, error) {
	data, err := s.bucket.LoadModel(ctx, s.cfg.ModelName, s.cfg.ModelDir)
	if err != nil {
		return "", err
	}

	dest := s.cfg.EvaluationModelPath()
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create evaluation directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write model: %w", err)
	}

	s.logger.Info("Fetched model", zap.String("key", s.cfg.ModelKey()), zap.String("dest", dest), zap.Int("bytes", len(data)))
	return dest, nil
}
