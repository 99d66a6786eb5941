// Package cluster generates synthetic sample matrices drawn from a
// mixture of isotropic Gaussian clusters, the data source used to build
// benchmark inputs when no real dataset is at hand.
package cluster

import (
	"fmt"
	"math/rand"

	"github.com/lshkit/datakit/matrix"
)

// centerBox bounds the uniform placement of cluster centers per
// dimension, matching the data the benchmarks were tuned against.
const centerBox = 10.0

// ErrInvalidParameter reports a generation parameter outside its domain.
type ErrInvalidParameter struct {
	Param string
	Value any
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("cluster: invalid parameter %s: %v", e.Param, e.Value)
}

// Config holds the generation parameters. Every knob is explicit; in
// particular the seed is a parameter, not ambient process state, so the
// same config always yields a bit-identical matrix.
type Config struct {
	// Samples is the number of rows to generate (>= 0).
	Samples int
	// Dims is the number of features per sample (>= 1).
	Dims int
	// Clusters is the number of Gaussian clusters (>= 1).
	Clusters int
	// Std is the isotropic standard deviation of each cluster (> 0).
	Std float64
	// Seed seeds the private random source.
	Seed int64
	// ScaleToUnit rescales every feature column to [0, 1] with an
	// affine min-max transform after generation.
	ScaleToUnit bool
}

func (c Config) validate() error {
	if c.Samples < 0 {
		return &ErrInvalidParameter{Param: "samples", Value: c.Samples}
	}
	if c.Dims < 1 {
		return &ErrInvalidParameter{Param: "dims", Value: c.Dims}
	}
	if c.Clusters < 1 {
		return &ErrInvalidParameter{Param: "clusters", Value: c.Clusters}
	}
	if !(c.Std > 0) {
		return &ErrInvalidParameter{Param: "std", Value: c.Std}
	}
	return nil
}

// Generate produces a Samples x Dims matrix from a mixture of Clusters
// isotropic Gaussian clusters.
//
// Cluster centers are placed uniformly in [-10, 10] per dimension and
// samples are split across clusters as evenly as possible (the first
// samples%clusters clusters receive one extra sample). Each sample is
// its cluster center perturbed by N(0, 1)*Std per coordinate. The final
// row order is shuffled, so rows of one cluster are not grouped.
func Generate(cfg Config) (matrix.Matrix[float32], error) {
	if err := cfg.validate(); err != nil {
		return matrix.Matrix[float32]{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	n, d, k := cfg.Samples, cfg.Dims, cfg.Clusters

	centers := make([]float32, k*d)
	for i := range centers {
		centers[i] = float32(rng.Float64()*2*centerBox - centerBox)
	}

	data := make([]float32, n*d)
	row := 0
	for c := 0; c < k; c++ {
		size := n / k
		if c < n%k {
			size++
		}
		center := centers[c*d : (c+1)*d]
		for s := 0; s < size; s++ {
			vec := data[row*d : (row+1)*d]
			for j := range vec {
				vec[j] = center[j] + float32(rng.NormFloat64()*cfg.Std)
			}
			row++
		}
	}

	// Interleave clusters in the output.
	shuffled := make([]float32, n*d)
	for i, p := range rng.Perm(n) {
		copy(shuffled[i*d:(i+1)*d], data[p*d:(p+1)*d])
	}

	if cfg.ScaleToUnit {
		scaleToUnit(shuffled, n, d)
	}

	return matrix.New(n, d, shuffled)
}

// scaleToUnit rescales each feature column in place so its minimum maps
// to 0 and its maximum to 1. A zero-variance column maps to 0 everywhere
// rather than dividing by zero.
func scaleToUnit(values []float32, rows, cols int) {
	for j := 0; j < cols; j++ {
		if rows == 0 {
			return
		}
		minV, maxV := values[j], values[j]
		for i := 1; i < rows; i++ {
			v := values[i*cols+j]
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}

		span := maxV - minV
		for i := 0; i < rows; i++ {
			idx := i*cols + j
			if span == 0 {
				values[idx] = 0
			} else {
				values[idx] = (values[idx] - minV) / span
			}
		}
	}
}
