// SPDX-License-Identifier: MIT

package lightcone

import (
	"math"

	"github.com/katalvlaran/worldline/units"
)

// Separation classifies the interval between two events.
type Separation int

const (
	// Timelike: |Δx| < c·|Δt|; a massive observer can connect the events.
	Timelike Separation = iota
	// Lightlike: |Δx| = c·|Δt| within the near-zero tolerance.
	Lightlike
	// Spacelike: |Δx| > c·|Δt|; no causal connection.
	Spacelike
)

// String returns the lower-case name of s.
func (s Separation) String() string {
	switch s {
	case Timelike:
		return "timelike"
	case Lightlike:
		return "lightlike"
	default:
		return "spacelike"
	}
}

// IsInsideLightCone reports whether the displacement (deltaX, deltaT) lies in
// the future light cone: deltaT > 0 and |deltaX| ≤ deltaT·c·(1+margin).
//
// The boundary counts as inside. margin widens (> 0) or narrows (< 0) the
// admissible cone. Non-positive or NaN deltaT, and NaN deltaX, give false.
// The speed of light comes from opts (units.C by default).
//
// Complexity: O(1).
func IsInsideLightCone(deltaX, deltaT, margin float64, opts ...units.Option) bool {
	if !(deltaT > 0) || math.IsNaN(deltaX) {
		return false
	}
	c := units.NewOptions(opts...).SpeedOfLight()

	return math.Abs(deltaX) <= deltaT*c*(1+margin)
}

// Classify returns the separation of the displacement (deltaX, deltaT). The
// sign of deltaT is ignored; use IsInsideLightCone for future-directed checks.
func Classify(deltaX, deltaT float64, opts ...units.Option) Separation {
	o := units.NewOptions(opts...)
	reach := o.SpeedOfLight() * math.Abs(deltaT)
	d := math.Abs(deltaX)
	switch {
	case math.Abs(d-reach) <= o.NearZero()*math.Max(1, reach):
		return Lightlike
	case d < reach:
		return Timelike
	default:
		return Spacelike
	}
}
