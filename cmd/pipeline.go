package cmd

import (
	"fmt"

	"artifact-store/feature/pipeline"

	"github.com/spf13/cobra"
)

var pushKeepLocal bool

// pipelineCmd groups the pipeline stage commands
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the storage side of a pipeline stage",
	Long:  `Runs the transfers of one pipeline stage using the PIPELINE_* layout settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Download the dataset archive into the ingestion directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		stages, err := newStages()
		if err != nil {
			return err
		}
		path, err := stages.Ingest(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the trained model",
	RunE: func(cmd *cobra.Command, args []string) error {
		stages, err := newStages()
		if err != nil {
			return err
		}
		return stages.Push(cmd.Context(), pushKeepLocal)
	},
}

var fetchModelCmd = &cobra.Command{
	Use:   "fetch-model",
	Short: "Load the stored model into the evaluation directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		stages, err := newStages()
		if err != nil {
			return err
		}
		path, err := stages.FetchModel(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func newStages() (*pipeline.Stages, error) {
	a, err := bootstrap()
	if err != nil {
		return nil, err
	}

	cfg := a.cfg.Pipeline
	if bucketFlag != "" {
		cfg.Bucket = bucketFlag
	}
	return pipeline.New(a.service, a.cfg.Storage.Bucket, cfg, a.logger)
}

func init() {
	pushCmd.Flags().BoolVar(&pushKeepLocal, "keep-local", false, "keep the trained model after uploading")

	pipelineCmd.AddCommand(ingestCmd, pushCmd, fetchModelCmd)
	RootCmd.AddCommand(pipelineCmd)
}
