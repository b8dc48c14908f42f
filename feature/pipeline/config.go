package pipeline

import (
	"path/filepath"

	"artifact-store/feature/artifacts"
)

// Local directories under ArtifactsDir, one per stage.
const (
	IngestionDir  = "data_ingestion"
	TrainedDir    = "trained_model"
	EvaluationDir = "model_evaluation"
)

// Config holds the local and remote layout shared by the pipeline stages.
type Config struct {
	// ArtifactsDir is the local root for stage outputs.
	ArtifactsDir string `mapstructure:"artifacts_dir" default:"artifacts"`
	// Bucket overrides storage.bucket for the pipeline. Empty keeps storage.bucket.
	Bucket string `mapstructure:"bucket" default:""`
	// DatasetArchive is the key of the zipped dataset in the bucket.
	DatasetArchive string `mapstructure:"dataset_archive" default:"dataset.zip"`
	// ModelName is the file name of the trained model, locally and remotely.
	ModelName string `mapstructure:"model_name" default:"model.pt"`
	// ModelDir is the remote folder holding the model. Empty stores it at the bucket root.
	ModelDir string `mapstructure:"model_dir" default:""`
}

// ArchivePath is where ingestion writes the dataset archive.
func (c Config) ArchivePath() string {
	return filepath.Join(c.ArtifactsDir, IngestionDir, filepath.Base(c.DatasetArchive))
}

// TrainedModelPath is where training leaves the model for the pusher.
func (c Config) TrainedModelPath() string {
	return filepath.Join(c.ArtifactsDir, TrainedDir, c.ModelName)
}

// EvaluationModelPath is where FetchModel writes the stored model.
func (c Config) EvaluationModelPath() string {
	return filepath.Join(c.ArtifactsDir, EvaluationDir, c.ModelName)
}

// ModelKey is the bucket key of the model.
func (c Config) ModelKey() string {
	return artifacts.ModelKey(c.ModelName, c.ModelDir)
}
