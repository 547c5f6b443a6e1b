// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
)

// Result is the collected outcome of a post-hoc trajectory check.
// Valid is true iff Errors is empty.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (r *Result) addf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Trajectory checks a sampled worldline and reports every violation found:
//
//   - fewer than 2 samples;
//   - any sample with |v| ≥ 1 or gamma < 1 (NaN counts as a violation);
//   - coordinate time not strictly increasing between consecutive samples;
//   - proper time not strictly increasing between consecutive samples.
//
// Errors are listed in sample order, so the first message names the earliest
// problem. The input is not modified.
//
// Complexity: O(n).
func Trajectory(points []spacetime.Point) Result {
	r := Result{Errors: []string{}}
	if len(points) < units.MinSampleCount {
		r.addf("insufficient length: %d sample(s), need at least %d", len(points), units.MinSampleCount)
	}
	for i, p := range points {
		if !(math.Abs(p.V) < 1) {
			r.addf("point %d: speed |v|=%g is not below light speed", i, math.Abs(p.V))
		}
		if !(p.Gamma >= 1) {
			r.addf("point %d: Lorentz factor gamma=%g is below 1", i, p.Gamma)
		}
		if i == 0 {
			continue
		}
		prev := points[i-1]
		if !(p.T > prev.T) {
			r.addf("point %d: coordinate time not strictly increasing (t=%g after t=%g)", i, p.T, prev.T)
		}
		if !(p.Tau > prev.Tau) {
			r.addf("point %d: proper time not strictly increasing (tau=%g after tau=%g)", i, p.Tau, prev.Tau)
		}
	}
	r.Valid = len(r.Errors) == 0

	return r
}
