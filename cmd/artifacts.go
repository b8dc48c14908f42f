package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"artifact-store/feature/artifacts"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	readDecode   bool
	readReadable bool
	modelDir     string
	modelOut     string
	keepLocal    bool
)

// resolveCmd lists the objects matching a prefix
var resolveCmd = &cobra.Command{
	Use:   "resolve [prefix]",
	Short: "List the objects whose key starts with a prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		b, err := a.bucket()
		if err != nil {
			return err
		}

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		res, err := b.Resolve(cmd.Context(), prefix)
		if err != nil {
			return err
		}

		if obj, ok := res.Single(); ok {
			return printJSON(cmd.OutOrStdout(), obj)
		}
		objects, _ := res.Many()
		return printJSON(cmd.OutOrStdout(), objects)
	},
}

// readCmd prints the body of one object
var readCmd = &cobra.Command{
	Use:   "read <key>",
	Short: "Print the content of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		b, err := a.bucket()
		if err != nil {
			return err
		}

		payload, err := b.Read(cmd.Context(), artifacts.Object{Key: args[0]}, artifacts.Decoding(readDecode, readReadable)...)
		if err != nil {
			return err
		}
		return writePayload(cmd.OutOrStdout(), payload)
	},
}

// loadModelCmd fetches a model into a local file
var loadModelCmd = &cobra.Command{
	Use:   "load-model <name>",
	Short: "Load a model by name and write it to a local file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		b, err := a.bucket()
		if err != nil {
			return err
		}

		data, err := b.LoadModel(cmd.Context(), args[0], modelDir)
		if err != nil {
			return err
		}

		out := modelOut
		if out == "" {
			out = args[0]
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write model: %w", err)
		}

		a.logger.Info("Model saved", zap.String("key", artifacts.ModelKey(args[0], modelDir)), zap.String("file", out), zap.Int("bytes", len(data)))
		return nil
	},
}

// mkdirCmd creates a folder marker
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <folder>",
	Short: "Create a folder in the bucket if it does not exist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		b, err := a.bucket()
		if err != nil {
			return err
		}
		return b.EnsureFolder(cmd.Context(), args[0])
	},
}

// uploadCmd stores a local file
var uploadCmd = &cobra.Command{
	Use:   "upload <file> <key>",
	Short: "Upload a local file and delete it unless --keep-local is set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		b, err := a.bucket()
		if err != nil {
			return err
		}

		var opts []artifacts.UploadOption
		if keepLocal {
			opts = append(opts, artifacts.KeepLocal())
		}
		return b.Upload(cmd.Context(), args[0], args[1], opts...)
	},
}

// downloadCmd fetches an object into a local file
var downloadCmd = &cobra.Command{
	Use:   "download <key> <file>",
	Short: "Download an object to a local file, replacing it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		b, err := a.bucket()
		if err != nil {
			return err
		}

		path, err := b.Download(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePayload(w io.Writer, p artifacts.Payload) error {
	var err error
	switch v := p.(type) {
	case artifacts.Text:
		_, err = io.WriteString(w, string(v))
	case artifacts.Binary:
		_, err = w.Write(v)
	case artifacts.TextStream:
		_, err = io.Copy(w, v)
	}
	return err
}

func init() {
	readCmd.Flags().BoolVar(&readDecode, "decode", true, "decode the body as UTF-8 text")
	readCmd.Flags().BoolVar(&readReadable, "readable", false, "stream the decoded text")
	loadModelCmd.Flags().StringVar(&modelDir, "dir", "", "folder holding the model")
	loadModelCmd.Flags().StringVarP(&modelOut, "out", "o", "", "output file (defaults to the model name)")
	uploadCmd.Flags().BoolVar(&keepLocal, "keep-local", false, "keep the local file after uploading")

	RootCmd.AddCommand(resolveCmd, readCmd, loadModelCmd, mkdirCmd, uploadCmd, downloadCmd)
}
