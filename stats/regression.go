// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mx2/matrix"
)

// Sentinel errors for regression.
var (
	// ErrLengthMismatch indicates x and y of different length.
	ErrLengthMismatch = errors.New("stats: x and y lengths differ")

	// ErrNoPoints indicates a fit over zero points.
	ErrNoPoints = errors.New("stats: no points to fit")
)

// LineFit is the result of FitLine.
type LineFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	Points    int

	// Degenerate is true when x has no spread (including a single point). The fit then
	// has Slope 0 and Intercept mean(y).
	Degenerate bool
}

// FitLine fits y = Slope·x + Intercept by ordinary least squares.
//
// Implementation:
//   - Stage 1: Build the n×2 design matrix [x 1] and solve the normal equations.
//   - Stage 2: If XᵀX is singular (x constant), fall back to the horizontal line through mean(y).
//   - Stage 3: R² = 1 − SSres/SStot; when SStot is 0 it is 1 for an exact fit and 0 otherwise.
func FitLine(x, y []float64) (LineFit, error) {
	if len(x) != len(y) {
		return LineFit{}, fmt.Errorf("FitLine(%d,%d): %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) == 0 {
		return LineFit{}, fmt.Errorf("FitLine: %w", ErrNoPoints)
	}

	design, err := matrix.NewDense(len(x), 2)
	if err != nil {
		return LineFit{}, fmt.Errorf("FitLine: %w", err)
	}
	for i, xi := range x {
		if err = design.Set(i, 0, xi); err != nil {
			return LineFit{}, fmt.Errorf("FitLine: %w", err)
		}
		if err = design.Set(i, 1, 1); err != nil {
			return LineFit{}, fmt.Errorf("FitLine: %w", err)
		}
	}

	fit := LineFit{Points: len(x)}
	beta, err := matrix.LeastSquares(design, y)
	switch {
	case errors.Is(err, matrix.ErrSingular):
		fit.Degenerate = true
		fit.Intercept = mean(y)
	case err != nil:
		return LineFit{}, fmt.Errorf("FitLine: %w", err)
	default:
		fit.Slope, fit.Intercept = beta[0], beta[1]
	}

	my := mean(y)
	var ssRes, ssTot float64
	for i, xi := range x {
		r := y[i] - (fit.Slope*xi + fit.Intercept)
		ssRes += r * r
		ssTot += (y[i] - my) * (y[i] - my)
	}
	switch {
	case ssTot > 0:
		fit.RSquared = 1 - ssRes/ssTot
	case ssRes == 0:
		fit.RSquared = 1
	}

	return fit, nil
}

func mean(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s / float64(len(v))
}
