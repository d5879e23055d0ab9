// SPDX-License-Identifier: MIT
// Package: mx2/builder
//
// validators.go — parameter and status checks shared by the constructors.

package builder

import (
	"github.com/katalvlaran/mx2/core"
)

// validateMin returns ErrTooFewUnits with context when got < min.
//
// Complexity: O(1).
func validateMin(method, what string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewUnits, "%s=%d < min=%d", what, got, min)
	}

	return nil
}

// checkCnx turns a connectivity call result into an error. Any non-OK Status means the
// construction broke an invariant (a duplicate link or an overflowing list).
func checkCnx(method, call string, st core.Status, err error) error {
	if err != nil {
		return builderErrorf(method, err, "%s", call)
	}
	if !st.OK() {
		return builderErrorf(method, ErrConstructFailed, "%s: status %s", call, st)
	}

	return nil
}
