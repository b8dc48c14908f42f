package cmd

import (
	"fmt"
	"os"

	"artifact-store/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bucketFlag string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "artifact-store",
	Short: "Artifact Store for ML pipelines",
	Long: `Artifact Store moves pipeline artifacts between the local workspace and an
S3-compatible object store: datasets, trained models and evaluation results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better in a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&bucketFlag, "bucket", "b", "", "bucket to operate on (defaults to STORAGE_BUCKET)")
}
