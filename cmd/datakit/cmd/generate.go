package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lshkit/datakit"
	"github.com/lshkit/datakit/cluster"
)

var (
	genSize    int
	genDims    int
	genOutput  string
	genCluster int
	genStd     float64
	genScale   bool
	genSeed    int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize a clustered point cloud dataset",
	Long: `Generate draws points from a mixture of isotropic Gaussian clusters and
writes them as float32 values in the binary dataset format.

Example:
  datakit generate --size 100000 --dims 10 --num-cluster 5 --output points.bin
  datakit generate --size 1000 --dims 2 --scale --output s3://bench/points.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cluster.Config{
			Samples:     genSize,
			Dims:        genDims,
			Clusters:    genCluster,
			Std:         genStd,
			Seed:        genSeed,
			ScaleToUnit: genScale,
		}
		return datakit.GenerateFile(cmd.Context(), cfg, genOutput,
			datakit.WithLogger(newLogger()))
	},
}

func init() {
	generateCmd.Flags().IntVar(&genSize, "size", 0, "the number of data points")
	generateCmd.Flags().IntVar(&genDims, "dims", 0, "the number of dimensions per data point")
	generateCmd.Flags().StringVar(&genOutput, "output", "", "the file to write the generated data points to")
	generateCmd.Flags().IntVar(&genCluster, "num-cluster", 3, "the number of different clusters")
	generateCmd.Flags().Float64Var(&genStd, "cluster-std", 1.0, "the clusters standard deviation")
	generateCmd.Flags().BoolVar(&genScale, "scale", false, "scale the data points to [0, 1]")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "the random seed")

	_ = generateCmd.MarkFlagRequired("size")
	_ = generateCmd.MarkFlagRequired("dims")
	_ = generateCmd.MarkFlagRequired("output")
}
