// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
)

// ErrBadBins indicates a histogram request with fewer than one bin.
var ErrBadBins = errors.New("stats: bin count must be positive")

// Continuous collects float samples.
type Continuous struct {
	values []float64
}

// NewContinuous returns an empty sample set.
func NewContinuous() *Continuous { return &Continuous{} }

// Add records one sample.
func (c *Continuous) Add(v float64) { c.values = append(c.values, v) }

// Len returns the number of samples.
func (c *Continuous) Len() int { return len(c.values) }

// Values returns a sorted copy of the samples.
func (c *Continuous) Values() []float64 {
	out := append([]float64(nil), c.values...)
	sort.Float64s(out)

	return out
}

// Mean returns the sample mean, or NaN when empty.
func (c *Continuous) Mean() float64 {
	if len(c.values) == 0 {
		return math.NaN()
	}

	return lo.Sum(c.values) / float64(len(c.values))
}

// StdDev returns the population standard deviation, or NaN when empty.
func (c *Continuous) StdDev() float64 {
	mean := c.Mean()
	if math.IsNaN(mean) {
		return mean
	}
	sum := 0.0
	for _, v := range c.values {
		sum += (v - mean) * (v - mean)
	}

	return math.Sqrt(sum / float64(len(c.values)))
}

// Min returns the smallest sample, or NaN when empty.
func (c *Continuous) Min() float64 {
	if len(c.values) == 0 {
		return math.NaN()
	}

	return lo.Min(c.values)
}

// Max returns the largest sample, or NaN when empty.
func (c *Continuous) Max() float64 {
	if len(c.values) == 0 {
		return math.NaN()
	}

	return lo.Max(c.values)
}

// Bin is one histogram bucket [Lo, Hi).
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram splits [Min, Max] into bins equal-width buckets. The last bucket is closed.
// An empty sample set yields nil; a degenerate range puts every sample in one bucket.
func (c *Continuous) Histogram(bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, fmt.Errorf("Histogram(%d): %w", bins, ErrBadBins)
	}
	if len(c.values) == 0 {
		return nil, nil
	}
	low, high := c.Min(), c.Max()
	width := (high - low) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = low + float64(i)*width
		out[i].Hi = low + float64(i+1)*width
	}
	for _, v := range c.values {
		i := bins - 1
		if width > 0 {
			i = int((v - low) / width)
			if i >= bins {
				i = bins - 1
			}
		}
		out[i].Count++
	}

	return out, nil
}
