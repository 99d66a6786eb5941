package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lshkit/datakit"
)

var descType string

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Print the shape of an existing dataset file",
	Long: `Describe reads only the 8-byte shape header of a dataset file. The file
carries no element type tag, so --type states the convention it was
written with; it only affects the reported payload size.

Example:
  datakit describe points.bin
  datakit describe --type uint32 s3://bench/points.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := datakit.Describe(cmd.Context(), args[0], descType,
			datakit.WithLogger(newLogger()))
		if err != nil {
			return err
		}
		fmt.Printf("rows:    %d\n", info.Rows)
		fmt.Printf("cols:    %d\n", info.Cols)
		fmt.Printf("type:    %s (%d bytes/value, by convention)\n", info.Kind.Name, info.Kind.Size)
		fmt.Printf("payload: %d bytes\n", info.PayloadBytes)
		return nil
	},
}

func init() {
	describeCmd.Flags().StringVar(&descType, "type", "float32", "element type the file was written with")
}
