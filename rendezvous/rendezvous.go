// SPDX-License-Identifier: MIT

package rendezvous

import (
	"math"

	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/rapidity"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
)

// Solution describes the constant-proper-acceleration maneuver connecting two
// events.
type Solution struct {
	Alpha          float64 `json:"alpha"`           // proper acceleration, signed
	TauF           float64 `json:"tau_f"`           // proper time of the maneuver, ≥ 0
	PhiF           float64 `json:"phi_f"`           // final rapidity
	VF             float64 `json:"v_f"`             // final velocity
	DeltaPhi       float64 `json:"delta_phi"`       // rapidity increment, signed
	EnergyConsumed float64 `json:"energy_consumed"` // |DeltaPhi|, ≥ 0
	IsValid        bool    `json:"is_valid"`
}

// Solve returns the maneuver that leaves (x0, t0) with velocity v0 and
// arrives exactly at (x1, t1).
//
// Errors:
//   - PhysicsParameterInvalid: a non-finite input.
//   - CausalityViolation: t1 ≤ t0, or |x1−x0| ≥ c·(t1−t0).
//   - DomainOutOfRange: |v0| ≥ 1.
//
// Complexity: O(1).
func Solve(x0, t0, v0, x1, t1 float64, opts ...units.Option) (Solution, error) {
	const op = "rendezvous.Solve"
	for _, f := range [...]float64{x0, t0, v0, x1, t1} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Solution{}, kinerr.New(kinerr.PhysicsParameterInvalid, op, "inputs must be finite",
				"x0", x0, "t0", t0, "v0", v0, "x1", x1, "t1", t1)
		}
	}

	o := units.NewOptions(opts...)
	c, tol := o.SpeedOfLight(), o.NearZero()

	deltaX, deltaT := x1-x0, t1-t0
	if deltaT <= 0 {
		return Solution{}, kinerr.New(kinerr.CausalityViolation, op, "target must be later than start",
			"deltaT", deltaT)
	}
	if math.Abs(v0) >= 1 {
		return Solution{}, kinerr.New(kinerr.DomainOutOfRange, op, "initial velocity must satisfy |v0| < 1",
			"v0", v0)
	}

	if math.Abs(deltaX) < tol && math.Abs(v0) < tol {
		return Solution{TauF: deltaT, IsValid: true}, nil
	}

	beta := deltaX / (c * deltaT)
	if math.Abs(beta) >= 1 {
		return Solution{}, kinerr.New(kinerr.CausalityViolation, op,
			"target lies outside the light cone: average speed would reach c",
			"deltaX", deltaX, "deltaT", deltaT, "beta", beta)
	}

	phi0, err := rapidity.VelocityToRapidity(v0)
	if err != nil {
		return Solution{}, err
	}
	phiBeta, err := rapidity.Artanh(beta)
	if err != nil {
		return Solution{}, err
	}

	deltaPhi := 2 * (phiBeta - phi0)
	phiF := phi0 + deltaPhi

	// Already coasting at the average velocity: no thrust, inertial proper time.
	if math.Abs(deltaPhi) < tol {
		return Solution{
			TauF:    deltaT * math.Sqrt(1-v0*v0),
			PhiF:    phi0,
			VF:      v0,
			IsValid: true,
		}, nil
	}

	// sinh φ_f − sinh φ0 = 2·cosh((φ_f+φ0)/2)·sinh(Δφ/2), and (φ_f+φ0)/2 = artanh β.
	alpha := 2 * c * math.Cosh(phiBeta) * math.Sinh(deltaPhi/2) / deltaT

	return Solution{
		Alpha:          alpha,
		TauF:           c * math.Abs(deltaPhi) / math.Abs(alpha),
		PhiF:           phiF,
		VF:             rapidity.RapidityToVelocity(phiF),
		DeltaPhi:       deltaPhi,
		EnergyConsumed: math.Abs(deltaPhi),
		IsValid:        true,
	}, nil
}

// SolveEvents is Solve over spacetime.Event values.
func SolveEvents(from, to spacetime.Event, v0 float64, opts ...units.Option) (Solution, error) {
	return Solve(from.X, from.T, v0, to.X, to.T, opts...)
}
