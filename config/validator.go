package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalid is the cause of every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks ranges and cross-field constraints:
//   - ring sizes within [3, ring_capacity] and min <= max
//   - a known geometry with usable seed dimensions
//   - positive temperature, bond length and optimiser settings
//   - non-negative potential parameters
func Validate(cfg *Config) error {
	var errs []string
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	nw := cfg.Network
	if nw.RingCapacity < 3 {
		add("network.ring_capacity: %d < 3", nw.RingCapacity)
	}
	if nw.MinRingSize < 3 {
		add("network.min_ring_size: %d < 3", nw.MinRingSize)
	}
	if nw.MaxRingSize < nw.MinRingSize {
		add("network.max_ring_size: %d < min_ring_size %d", nw.MaxRingSize, nw.MinRingSize)
	}
	if nw.MaxRingSize > nw.RingCapacity {
		add("network.max_ring_size: %d > ring_capacity %d", nw.MaxRingSize, nw.RingCapacity)
	}
	if nw.TargetRings < 1 {
		add("network.target_rings: %d < 1", nw.TargetRings)
	}
	if !(nw.BondLength > 0) || math.IsInf(nw.BondLength, 0) {
		add("network.bond_length: %v must be finite and > 0", nw.BondLength)
	}
	switch nw.Geometry {
	case GeometryHexagonal:
		if nw.SeedRows < 1 || nw.SeedCols < 1 {
			add("network.seed_rows/seed_cols: %dx%d must be at least 1x1", nw.SeedRows, nw.SeedCols)
		}
	case GeometryRing, GeometryPair:
		if nw.SeedRingSize < 3 || nw.SeedRingSize > nw.RingCapacity {
			add("network.seed_ring_size: %d outside [3,%d]", nw.SeedRingSize, nw.RingCapacity)
		}
	default:
		add("network.geometry: unknown %q (want %s, %s or %s)", nw.Geometry, GeometryHexagonal, GeometryRing, GeometryPair)
	}

	if t := cfg.MonteCarlo.Temperature; !(t > 0) || math.IsInf(t, 0) {
		add("monte_carlo.temperature: %v must be finite and > 0", t)
	}

	p := cfg.Potential
	for name, v := range map[string]float64{
		"k_mx": p.KMX, "r0_mx": p.R0MX, "k_xx": p.KXX, "r0_xx": p.R0XX, "k_mm": p.KMM, "r0_mm": p.R0MM,
	} {
		if !(v >= 0) || math.IsInf(v, 0) {
			add("potential.%s: %v must be finite and >= 0", name, v)
		}
	}

	o := cfg.Optimisation
	if o.MaxIterations < 1 {
		add("optimisation.max_iterations: %d < 1", o.MaxIterations)
	}
	if !(o.LineSearchInc > 0) {
		add("optimisation.line_search_inc: %v must be > 0", o.LineSearchInc)
	}
	if !(o.Convergence >= 0) {
		add("optimisation.convergence: %v must be >= 0", o.Convergence)
	}
	if o.LocalShells < 0 {
		add("optimisation.local_shells: %d < 0", o.LocalShells)
	}

	if len(errs) > 0 {
		// Map iteration order is random; keep the report stable.
		sort.Strings(errs)
		return errors.Wrapf(ErrInvalid, "validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
