// SPDX-License-Identifier: MIT

package lightcone

import (
	"math"

	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
)

// Isochrone samples the hyperbola of events that inertial observers leaving
// origin reach after proper time tau:
//
//	t = t0 + sqrt(tau² + (x − x0)²/c²)
//
// n events are returned at evenly spaced x in [x0−halfWidth, x0+halfWidth],
// ordered by increasing x. Every returned event is timelike-separated from
// origin and lies inside its future light cone.
//
// Errors (PhysicsParameterInvalid): non-finite origin, tau not finite or
// ≤ 0, halfWidth not finite or < 0, n outside [2, max samples].
//
// Complexity: O(n) time and memory.
func Isochrone(origin spacetime.Event, tau, halfWidth float64, n int, opts ...units.Option) ([]spacetime.Event, error) {
	const op = "lightcone.Isochrone"
	o := units.NewOptions(opts...)
	switch {
	case !origin.IsFinite():
		return nil, kinerr.New(kinerr.PhysicsParameterInvalid, op, "origin must be finite",
			"x0", origin.X, "t0", origin.T)
	case math.IsNaN(tau) || math.IsInf(tau, 0) || tau <= 0:
		return nil, kinerr.New(kinerr.PhysicsParameterInvalid, op, "tau must be finite and > 0", "tau", tau)
	case math.IsNaN(halfWidth) || math.IsInf(halfWidth, 0) || halfWidth < 0:
		return nil, kinerr.New(kinerr.PhysicsParameterInvalid, op, "halfWidth must be finite and >= 0",
			"halfWidth", halfWidth)
	case n < units.MinSampleCount || n > o.MaxSamples():
		return nil, kinerr.New(kinerr.PhysicsParameterInvalid, op, "sample count out of range",
			"n", n, "max", o.MaxSamples())
	}

	c := o.SpeedOfLight()
	out := make([]spacetime.Event, n)
	for i := range out {
		dx := -halfWidth + 2*halfWidth*float64(i)/float64(n-1)
		out[i] = spacetime.Event{
			X: origin.X + dx,
			T: origin.T + math.Sqrt(tau*tau+(dx/c)*(dx/c)),
		}
	}

	return out, nil
}
