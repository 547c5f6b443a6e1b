// SPDX-License-Identifier: MIT

package trajectory

import (
	"github.com/katalvlaran/worldline/rendezvous"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
	"github.com/katalvlaran/worldline/validate"
)

// Plan is a solved rendezvous together with its sampled worldline and the
// post-hoc check of that worldline.
type Plan struct {
	Solution rendezvous.Solution `json:"solution"`
	Points   []spacetime.Point   `json:"points"`
	Report   validate.Result     `json:"report"`
}

// Rendezvous is the normal entry point for callers: it validates both events,
// solves the maneuver from `from` (velocity v0) to `to`, and samples it with
// n points (0 = configured default) using the solver's α and τ_f.
//
// The sampling mode follows the solution rather than the near-zero tolerance:
// α == 0 is sampled as inertial motion at v0 and any other α on the
// hyperbolic arc, so the last point lands on `to` even for a tiny α over a
// long Δt. The returned Report is always filled; a failed Report is not an
// error.
//
// Errors: PositionInvalid, SourceFrameIncompatible, and every error of
// rendezvous.Solve and Generate.
func Rendezvous(from, to spacetime.Event, v0 float64, n int, opts ...units.Option) (Plan, error) {
	if err := validate.Position(from); err != nil {
		return Plan{}, err
	}
	if err := validate.Position(to); err != nil {
		return Plan{}, err
	}
	if err := validate.SourceTarget(&from, to, opts...); err != nil {
		return Plan{}, err
	}

	sol, err := rendezvous.SolveEvents(from, to, v0, opts...)
	if err != nil {
		return Plan{}, err
	}

	pts, err := sampleSolution(from, v0, sol, n, units.NewOptions(opts...))
	if err != nil {
		return Plan{}, err
	}

	return Plan{Solution: sol, Points: pts, Report: validate.Trajectory(pts)}, nil
}

// sampleSolution samples sol from `from` with the mode forced by sol.Alpha.
func sampleSolution(from spacetime.Event, v0 float64, sol rendezvous.Solution, n int, o units.Options) ([]spacetime.Point, error) {
	const op = "trajectory.Rendezvous"
	s, n, err := prepareFixedCount(op, from.X, from.T, v0, sol.Alpha, sol.TauF, n, accelerated, o)
	if err != nil {
		return nil, err
	}

	out := make([]spacetime.Point, n)
	fillRange(s, out, 0, n, sol.TauF)

	return out, nil
}
