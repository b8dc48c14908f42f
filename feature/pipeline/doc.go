// Package pipeline runs the storage side of the ML pipeline stages.
//
// Stages never talk to the backend directly; they go through an
// artifacts.Bucket.
//
//   - Ingest: downloads the dataset archive to <artifacts>/data_ingestion.
//   - Push: ensures the model folder and uploads <artifacts>/trained_model/<model>.
//   - FetchModel: loads the stored model into <artifacts>/model_evaluation.
package pipeline
