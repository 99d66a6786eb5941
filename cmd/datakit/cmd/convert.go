package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lshkit/datakit"
	"github.com/lshkit/datakit/codec"
	"github.com/lshkit/datakit/matrix"
)

var (
	convOutput   string
	convType     string
	convDropLast bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] INPUT...",
	Short: "Convert ARFF attribute files to the binary dataset format",
	Long: `Convert parses one or more .arff files and writes each as a binary
dataset file. With one input, --output names the exact output file;
with several inputs, --output names a directory and each file becomes
<stem>.bin inside it. Inputs run concurrently.

The element type of the output is not recorded in the file; consumers
must be told it out of band (see 'datakit describe --type').

Example:
  datakit convert --output hepmass.bin --drop-last hepmass.arff
  datakit convert --output ./out --type uint32 a.arff b.arff c.arff`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, in := range args {
			if !strings.HasSuffix(in, ".arff") {
				return fmt.Errorf("%q is not an .arff file", in)
			}
		}
		if strings.HasSuffix(convOutput, ".arff") {
			return fmt.Errorf("the output (%q) should not have an .arff extension", convOutput)
		}

		opts := []datakit.Option{datakit.WithLogger(newLogger())}
		return runConvert(cmd.Context(), convType, args, convOutput, convDropLast, opts)
	},
}

// runConvert dispatches on the element type name. The binary format has
// no type tag, so the choice here is the out-of-band convention the
// consumer must replicate.
func runConvert(ctx context.Context, typeName string, inputs []string, output string, dropLast bool, opts []datakit.Option) error {
	switch typeName {
	case "float32":
		return convertAs[float32](ctx, inputs, output, dropLast, opts)
	case "float64":
		return convertAs[float64](ctx, inputs, output, dropLast, opts)
	case "uint32":
		return convertAs[uint32](ctx, inputs, output, dropLast, opts)
	case "int32":
		return convertAs[int32](ctx, inputs, output, dropLast, opts)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", codec.ErrUnknownType, typeName, strings.Join(codec.Kinds(), ", "))
	}
}

func convertAs[T matrix.Element](ctx context.Context, inputs []string, output string, dropLast bool, opts []datakit.Option) error {
	if len(inputs) == 1 {
		return datakit.ConvertARFF[T](ctx, inputs[0], output, dropLast, opts...)
	}
	return datakit.ConvertAllARFF[T](ctx, inputs, output, dropLast, opts...)
}

func init() {
	convertCmd.Flags().StringVar(&convOutput, "output", "", "the file (or directory for multiple inputs) to write to")
	convertCmd.Flags().StringVar(&convType, "type", "float32", "element type to convert values to")
	convertCmd.Flags().BoolVar(&convDropLast, "drop-last", false, "drop the trailing column (e.g. a label column)")

	_ = convertCmd.MarkFlagRequired("output")
}
