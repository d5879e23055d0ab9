// SPDX-License-Identifier: MIT

package stats

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"
)

// Discrete counts integer observations. Values iterate in ascending order.
// The zero value is not usable; call NewDiscrete.
type Discrete struct {
	counts *treemap.Map // int -> int
	total  int
}

// NewDiscrete returns an empty distribution.
func NewDiscrete() *Discrete {
	return &Discrete{counts: treemap.NewWithIntComparator()}
}

// Add records one observation of v.
func (d *Discrete) Add(v int) { d.AddN(v, 1) }

// AddN records n observations of v. Non-positive n is ignored.
func (d *Discrete) AddN(v, n int) {
	if n <= 0 {
		return
	}
	d.counts.Put(v, d.Count(v)+n)
	d.total += n
}

// Count returns the number of observations of v.
func (d *Discrete) Count(v int) int {
	c, ok := d.counts.Get(v)
	if !ok {
		return 0
	}

	return c.(int)
}

// Total returns the number of observations.
func (d *Discrete) Total() int { return d.total }

// Empty reports whether nothing was recorded.
func (d *Discrete) Empty() bool { return d.total == 0 }

// Values returns the distinct observed values in ascending order.
func (d *Discrete) Values() []int {
	keys := d.counts.Keys()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.(int)
	}

	return out
}

// Probability returns Count(v)/Total, or 0 for an empty distribution.
func (d *Discrete) Probability(v int) float64 {
	if d.total == 0 {
		return 0
	}

	return float64(d.Count(v)) / float64(d.total)
}

// Mean returns the expectation, or NaN for an empty distribution.
func (d *Discrete) Mean() float64 {
	if d.total == 0 {
		return math.NaN()
	}
	sum := 0.0
	it := d.counts.Iterator()
	for it.Next() {
		sum += float64(it.Key().(int) * it.Value().(int))
	}

	return sum / float64(d.total)
}

// Variance returns the population variance, or NaN for an empty distribution.
func (d *Discrete) Variance() float64 {
	mean := d.Mean()
	if math.IsNaN(mean) {
		return mean
	}
	sum := 0.0
	it := d.counts.Iterator()
	for it.Next() {
		dv := float64(it.Key().(int)) - mean
		sum += dv * dv * float64(it.Value().(int))
	}

	return sum / float64(d.total)
}
