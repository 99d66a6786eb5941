package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lshkit/datakit"
)

var (
	// Version is set at build time
	Version = "0.1.0"

	// Global flags
	verbose bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "datakit",
	Short: "datakit - binary benchmark dataset tooling",
	Long: `datakit produces the binary point datasets the benchmark binaries consume.

Commands:
  generate - synthesize a clustered point cloud dataset
  convert  - convert ARFF attribute files to the binary format
  describe - print the shape of an existing dataset file

Destinations and sources may be local paths, s3://bucket/key or
minio://bucket/key URLs. A .zst or .lz4 extension selects transparent
compression of the stored file.

Example:
  datakit generate --size 100000 --dims 10 --output points.bin
  datakit convert --output hepmass.bin --drop-last hepmass.arff
  datakit describe points.bin`,
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON-formatted logs")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(describeCmd)
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the logger from the global flags.
func newLogger() *datakit.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if logJSON {
		return datakit.NewJSONLogger(level)
	}
	return datakit.NewTextLogger(level)
}
