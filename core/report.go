// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Labelled fixed-precision analysis report.

package core

import (
	"bufio"
	"fmt"
	"io"
)

// reportPrecision is the number of decimals of every numeric value in the report.
const reportPrecision = 6

// WriteAnalysis writes the analysis report: the geometry validity flag, the ring-size
// probability table with its mean and variance, one neighbour probability table per ring
// size with its mean, and the Aboav–Weaire (α, μ, R²) triple.
func (n *Network[P]) WriteAnalysis(w io.Writer, geometryValid bool) error {
	st, err := n.CalculateRingStatistics()
	if err != nil {
		return fmt.Errorf("WriteAnalysis: %w", err)
	}

	bw := bufio.NewWriter(w)
	valid := 0
	if geometryValid {
		valid = 1
	}
	fmt.Fprintf(bw, "Geometry valid\n%d\n", valid)

	fmt.Fprintln(bw, "Ring statistics")
	fmt.Fprintf(bw, "%8s %12s\n", "size", "probability")
	for _, size := range st.Sizes.Values() {
		fmt.Fprintf(bw, "%8d %12.*f\n", size, reportPrecision, st.Sizes.Probability(size))
	}
	fmt.Fprintf(bw, "%8s %12.*f\n", "mean", reportPrecision, st.Sizes.Mean())
	fmt.Fprintf(bw, "%8s %12.*f\n", "variance", reportPrecision, st.Sizes.Variance())

	fmt.Fprintln(bw, "Neighbour statistics")
	for _, size := range st.Sizes.Values() {
		d, ok := st.Neighbours[size]
		if !ok {
			continue
		}
		fmt.Fprintf(bw, "ring size %d\n", size)
		fmt.Fprintf(bw, "%8s %12s\n", "size", "probability")
		for _, nb := range d.Values() {
			fmt.Fprintf(bw, "%8d %12.*f\n", nb, reportPrecision, d.Probability(nb))
		}
		fmt.Fprintf(bw, "%8s %12.*f\n", "mean", reportPrecision, d.Mean())
	}

	aw := st.AboavWeaire
	fmt.Fprintln(bw, "Aboav-Weaire")
	fmt.Fprintf(bw, "%12s %12s %12s\n", "alpha", "mu", "rsq")
	fmt.Fprintf(bw, "%12.*f %12.*f %12.*f\n",
		reportPrecision, aw.Alpha, reportPrecision, aw.Mu, reportPrecision, aw.RSquared)

	return bw.Flush()
}
