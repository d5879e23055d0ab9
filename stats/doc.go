// SPDX-License-Identifier: MIT

// Package stats holds the distributions and the regression used to analyse a grown
// network.
//
//   - Discrete:   integer-valued counts (ring sizes), kept sorted by value.
//   - Continuous: float samples (bond lengths) with moments and histograms.
//   - FitLine:    ordinary least squares y = slope·x + intercept with R².
package stats
