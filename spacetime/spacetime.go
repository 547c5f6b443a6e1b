// SPDX-License-Identifier: MIT

package spacetime

import (
	"math"

	"github.com/katalvlaran/worldline/kinerr"
)

// Event is a point (x, t) of 1+1D Minkowski space. T is coordinate time.
type Event struct {
	X float64 `json:"x"`
	T float64 `json:"t"`
}

// Point is one sample of a worldline.
//
// Invariants for every Point produced by this module: |V| < 1, Gamma ≥ 1,
// Tau ≥ 0. Across a sampled worldline Tau and T strictly increase.
type Point struct {
	X     float64 `json:"x"`
	T     float64 `json:"t"`
	V     float64 `json:"v"`     // velocity, fraction of c
	Gamma float64 `json:"gamma"` // Lorentz factor
	Phi   float64 `json:"phi"`   // rapidity
	Tau   float64 `json:"tau"`   // proper time since the worldline's start
}

// Event returns the spacetime position of p.
func (p Point) Event() Event {
	return Event{X: p.X, T: p.T}
}

// IsFinite reports whether both coordinates are finite.
func (e Event) IsFinite() bool {
	return isFinite(e.X) && isFinite(e.T)
}

// Sub returns (deltaX, deltaT) = e − from.
func (e Event) Sub(from Event) (deltaX, deltaT float64) {
	return e.X - from.X, e.T - from.T
}

// Interval returns the squared interval c²Δt² − Δx² between e and other.
// Positive: timelike; zero: lightlike; negative: spacelike.
func (e Event) Interval(other Event, c float64) float64 {
	dx, dt := other.Sub(e)

	return c*c*dt*dt - dx*dx
}

// Boost returns the coordinates of e seen from a frame moving with velocity v
// (fraction of c) relative to the current one; both frames share the origin.
//
//	x' = γ(x − v·c·t)
//	t' = γ(t − v·x/c)
//
// Fails with DomainOutOfRange when |v| ≥ 1.
func (e Event) Boost(v, c float64) (Event, error) {
	if math.IsNaN(v) || v <= -1 || v >= 1 {
		return Event{}, kinerr.New(kinerr.DomainOutOfRange, "spacetime.Boost",
			"velocity must satisfy |v| < 1", "v", v)
	}
	gamma := 1 / math.Sqrt(1-v*v)

	return Event{
		X: gamma * (e.X - v*c*e.T),
		T: gamma * (e.T - v*e.X/c),
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
