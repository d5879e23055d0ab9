package simulation

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// bondHistogramBins is the bucket count of the M–X length histogram.
const bondHistogramBins = 10

// WriteAnalysis writes the run header, the network analysis report, the bond-length
// summary and the M–X length histogram.
func (s *Simulation) WriteAnalysis(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Run\n%s\n", s.ID); err != nil {
		return errors.Wrap(err, "write header")
	}
	if err := s.net.WriteAnalysis(w, s.net.CheckGeometry()); err != nil {
		return errors.Wrap(err, "write analysis")
	}

	bonds := s.net.CalculateBondDistributions()
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Bond lengths")
	fmt.Fprintf(bw, "%8s %8s %12s %12s %12s %12s\n", "bond", "count", "mean", "stddev", "min", "max")
	for _, row := range []struct {
		name string
		mean float64
		std  float64
		min  float64
		max  float64
		n    int
	}{
		{"M-X", bonds.MX.Mean(), bonds.MX.StdDev(), bonds.MX.Min(), bonds.MX.Max(), bonds.MX.Len()},
		{"X-X", bonds.XX.Mean(), bonds.XX.StdDev(), bonds.XX.Min(), bonds.XX.Max(), bonds.XX.Len()},
	} {
		fmt.Fprintf(bw, "%8s %8d %12.6f %12.6f %12.6f %12.6f\n", row.name, row.n, row.mean, row.std, row.min, row.max)
	}

	bins, err := bonds.MX.Histogram(bondHistogramBins)
	if err != nil {
		return errors.Wrap(err, "bond histogram")
	}
	fmt.Fprintln(bw, "M-X histogram")
	fmt.Fprintf(bw, "%12s %12s %8s\n", "lo", "hi", "count")
	for _, b := range bins {
		fmt.Fprintf(bw, "%12.6f %12.6f %8d\n", b.Lo, b.Hi, b.Count)
	}

	return errors.Wrap(bw.Flush(), "write bond lengths")
}
