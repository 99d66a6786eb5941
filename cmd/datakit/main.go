// datakit - generate, convert and inspect binary benchmark datasets.
package main

import (
	"os"

	"github.com/lshkit/datakit/cmd/datakit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
