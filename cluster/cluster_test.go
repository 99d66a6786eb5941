package cluster

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := Config{Samples: 200, Dims: 8, Clusters: 5, Std: 1.5, Seed: 99}

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	// Bit-identical: no hidden global random state between calls.
	assert.True(t, a.Equal(b))

	c, err := Generate(Config{Samples: 200, Dims: 8, Clusters: 5, Std: 1.5, Seed: 100})
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestGenerate_Shape(t *testing.T) {
	for _, n := range []int{0, 1, 100} {
		for _, d := range []int{1, 2, 10} {
			for _, k := range []int{1, 5} {
				m, err := Generate(Config{Samples: n, Dims: d, Clusters: k, Std: 0.5, Seed: 3})
				require.NoError(t, err, "n=%d d=%d k=%d", n, d, k)
				assert.Equal(t, n, m.Rows)
				assert.Equal(t, d, m.Cols)
				assert.Len(t, m.Values, n*d)
			}
		}
	}
}

func TestGenerate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		param string
	}{
		{"NegativeSamples", Config{Samples: -1, Dims: 2, Clusters: 1, Std: 1}, "samples"},
		{"ZeroDims", Config{Samples: 10, Dims: 0, Clusters: 1, Std: 1}, "dims"},
		{"ZeroClusters", Config{Samples: 10, Dims: 2, Clusters: 0, Std: 1}, "clusters"},
		{"ZeroStd", Config{Samples: 10, Dims: 2, Clusters: 1, Std: 0}, "std"},
		{"NegativeStd", Config{Samples: 10, Dims: 2, Clusters: 1, Std: -0.5}, "std"},
		{"NaNStd", Config{Samples: 10, Dims: 2, Clusters: 1, Std: math.NaN()}, "std"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.cfg)
			var ip *ErrInvalidParameter
			require.True(t, errors.As(err, &ip), "got %v", err)
			assert.Equal(t, tt.param, ip.Param)
		})
	}
}

func TestGenerate_ScaleToUnit(t *testing.T) {
	m, err := Generate(Config{Samples: 100, Dims: 3, Clusters: 4, Std: 2, Seed: 7, ScaleToUnit: true})
	require.NoError(t, err)

	for j := 0; j < m.Cols; j++ {
		minV, maxV := float32(math.Inf(1)), float32(math.Inf(-1))
		for i := 0; i < m.Rows; i++ {
			v := m.At(i, j)
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(1))
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
		// The affine transform maps the column extremes exactly.
		assert.Equal(t, float32(0), minV, "column %d", j)
		assert.Equal(t, float32(1), maxV, "column %d", j)
	}
}

func TestScaleToUnit_ZeroVarianceColumn(t *testing.T) {
	// Column 0 is constant, column 1 spans [2, 6].
	values := []float32{
		5, 2,
		5, 4,
		5, 6,
	}
	scaleToUnit(values, 3, 2)

	// Policy: a zero-variance column maps to 0 everywhere.
	assert.Equal(t, []float32{
		0, 0,
		0, 0.5,
		0, 1,
	}, values)
}

func TestGenerate_TightClustersAreSeparable(t *testing.T) {
	m, err := Generate(Config{Samples: 6, Dims: 2, Clusters: 2, Std: 0.01, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, 6, m.Rows)
	require.Equal(t, 2, m.Cols)

	dist := func(a, b []float32) float64 {
		var sum float64
		for i := range a {
			d := float64(a[i]) - float64(b[i])
			sum += d * d
		}
		return math.Sqrt(sum)
	}

	// Group the rows by proximity to row 0: with std=0.01 the three
	// rows of its cluster are far closer than the other three.
	type rowDist struct {
		row int
		d   float64
	}
	dists := make([]rowDist, m.Rows)
	for i := 0; i < m.Rows; i++ {
		dists[i] = rowDist{row: i, d: dist(m.Row(0), m.Row(i))}
	}
	sort.Slice(dists, func(i, j int) bool { return dists[i].d < dists[j].d })

	groupA := []int{dists[0].row, dists[1].row, dists[2].row}
	groupB := []int{dists[3].row, dists[4].row, dists[5].row}

	maxWithin := 0.0
	for _, group := range [][]int{groupA, groupB} {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if d := dist(m.Row(group[i]), m.Row(group[j])); d > maxWithin {
					maxWithin = d
				}
			}
		}
	}

	minBetween := math.Inf(1)
	for _, a := range groupA {
		for _, b := range groupB {
			if d := dist(m.Row(a), m.Row(b)); d < minBetween {
				minBetween = d
			}
		}
	}

	assert.Less(t, maxWithin*10, minBetween,
		"within-group distance (%f) should be far below between-group distance (%f)", maxWithin, minBetween)
}

func TestGenerate_EvenClusterSizes(t *testing.T) {
	// With Std tiny relative to the center box, samples stay near
	// their centers, so cluster sizes can be recovered by proximity.
	m, err := Generate(Config{Samples: 10, Dims: 4, Clusters: 3, Std: 0.001, Seed: 11})
	require.NoError(t, err)

	dist := func(a, b []float32) float64 {
		var sum float64
		for i := range a {
			d := float64(a[i]) - float64(b[i])
			sum += d * d
		}
		return sum
	}

	// Greedy single-linkage grouping with a cut far above the noise
	// scale: rows within 1.0 of an existing group join it.
	var groups [][]int
	for i := 0; i < m.Rows; i++ {
		placed := false
		for g, group := range groups {
			if dist(m.Row(i), m.Row(group[0])) < 1.0 {
				groups[g] = append(groups[g], i)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []int{i})
		}
	}

	require.Len(t, groups, 3)
	sizes := []int{len(groups[0]), len(groups[1]), len(groups[2])}
	sort.Ints(sizes)
	// 10 samples over 3 clusters: as even as possible.
	assert.Equal(t, []int{3, 3, 4}, sizes)
}
