// SPDX-License-Identifier: MIT

package trajectory

import (
	"math"

	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/rapidity"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
	"github.com/katalvlaran/worldline/validate"
)

// motion selects the per-sample formula.
type motion int

const (
	auto        motion = iota // pick by |α| against the near-zero tolerance
	accelerated               // closed-form hyperbolic arc
	degenerate                // |α| < tol: fixed-origin form, x held at x0
	inertial                  // uniform translation at v0
)

// sampler holds the start state and the quantities shared by every sample.
type sampler struct {
	x0, t0, v0, alpha, c float64
	phi0, gamma0         float64
	mode                 motion
}

// newSampler validates the start state and precomputes φ0 and γ0. With mode
// auto the tolerance decides between accelerated and degenerate; a forced
// accelerated mode with α == 0 falls back to inertial.
func newSampler(op string, x0, t0, v0, alpha float64, mode motion, o units.Options) (*sampler, error) {
	if !isFinite(x0) || !isFinite(t0) || !isFinite(alpha) {
		return nil, kinerr.New(kinerr.PhysicsParameterInvalid, op, "x0, t0 and alpha must be finite",
			"x0", x0, "t0", t0, "alpha", alpha)
	}
	phi0, err := rapidity.VelocityToRapidity(v0)
	if err != nil {
		return nil, err
	}
	s := &sampler{
		x0: x0, t0: t0, v0: v0, alpha: alpha, c: o.SpeedOfLight(),
		phi0:   phi0,
		gamma0: 1 / math.Sqrt(1-v0*v0),
		mode:   mode,
	}
	switch {
	case mode == auto && math.Abs(alpha) < o.NearZero():
		s.mode = degenerate
	case mode == auto:
		s.mode = accelerated
	case mode == accelerated && alpha == 0:
		s.mode = inertial
	}

	return s, nil
}

// at evaluates the worldline at proper time tau.
func (s *sampler) at(tau float64) spacetime.Point {
	switch s.mode {
	case degenerate:
		return spacetime.Point{X: s.x0, T: s.t0 + tau, V: s.v0, Gamma: s.gamma0, Phi: s.phi0, Tau: tau}
	case inertial:
		return spacetime.Point{
			X:     s.x0 + s.v0*s.c*s.gamma0*tau,
			T:     s.t0 + s.gamma0*tau,
			V:     s.v0,
			Gamma: s.gamma0,
			Phi:   s.phi0,
			Tau:   tau,
		}
	}
	half := s.alpha * tau / (2 * s.c)
	mid := s.phi0 + half
	phi := mid + half
	// k = (2c²/α)·sinh(α·τ/2c); sinh(half)/α stays finite for tiny α.
	k := 2 * s.c * s.c * (math.Sinh(half) / s.alpha)

	return spacetime.Point{
		X:     s.x0 + k*math.Sinh(mid),
		T:     s.t0 + k/s.c*math.Cosh(mid),
		V:     rapidity.RapidityToVelocity(phi),
		Gamma: math.Cosh(phi),
		Phi:   phi,
		Tau:   tau,
	}
}

// reach rejects a span whose endpoint sample leaves float64 range. Position,
// time and γ are monotone or convex in τ, so a finite endpoint bounds every
// sample before it.
func (s *sampler) reach(op string, tauF float64) error {
	p := s.at(tauF)
	if isFinite(p.X) && isFinite(p.T) && isFinite(p.Gamma) {
		return nil
	}
	return kinerr.New(kinerr.PhysicsParameterInvalid, op, "worldline overflows float64 before tauF",
		"tauF", tauF, "alpha", s.alpha, "phi", p.Phi)
}

// At returns the single worldline sample at proper time tau for a body that
// starts at (x0, t0) with velocity v0 under proper acceleration alpha.
//
// Errors: DomainOutOfRange for |v0| ≥ 1; PhysicsParameterInvalid for
// non-finite inputs, tau < 0 or a sample beyond float64 range.
func At(x0, t0, v0, alpha, tau float64, opts ...units.Option) (spacetime.Point, error) {
	const op = "trajectory.At"
	s, err := newSampler(op, x0, t0, v0, alpha, auto, units.NewOptions(opts...))
	if err != nil {
		return spacetime.Point{}, err
	}
	if err := validate.ProperTime(tau); err != nil {
		return spacetime.Point{}, err
	}
	if err := s.reach(op, tau); err != nil {
		return spacetime.Point{}, err
	}

	return s.at(tau), nil
}

// Generate samples the worldline at n points evenly spaced in [0, tauF];
// sample i uses τ = i/(n−1)·tauF. n == 0 selects the configured default
// (units.DefaultSampleCount unless overridden).
//
// Errors: those of At, plus PhysicsParameterInvalid when n is 1, negative or
// above the configured maximum, and when tauF is 0 (n samples would coincide).
//
// Complexity: O(n) time and memory.
func Generate(x0, t0, v0, alpha, tauF float64, n int, opts ...units.Option) ([]spacetime.Point, error) {
	const op = "trajectory.Generate"
	o := units.NewOptions(opts...)
	s, n, err := prepareFixedCount(op, x0, t0, v0, alpha, tauF, n, auto, o)
	if err != nil {
		return nil, err
	}

	out := make([]spacetime.Point, n)
	fillRange(s, out, 0, n, tauF)

	return out, nil
}

// GenerateWithStep samples the worldline at τ = 0, dtau, 2·dtau, … while
// τ ≤ tauF. The final sample always sits exactly at tauF: when the last step
// falls short by more than the near-zero tolerance one more sample is
// appended at tauF, otherwise the last sample is moved onto tauF.
//
// Errors: those of At, plus PhysicsParameterInvalid when dtau is not finite
// and positive or the step count would exceed the configured maximum.
//
// Complexity: O(tauF/dtau) time and memory.
func GenerateWithStep(x0, t0, v0, alpha, tauF, dtau float64, opts ...units.Option) ([]spacetime.Point, error) {
	const op = "trajectory.GenerateWithStep"
	o := units.NewOptions(opts...)
	s, err := newSampler(op, x0, t0, v0, alpha, auto, o)
	if err != nil {
		return nil, err
	}
	if err := validate.ProperTime(tauF); err != nil {
		return nil, err
	}
	if err := s.reach(op, tauF); err != nil {
		return nil, err
	}
	if !isFinite(dtau) || dtau <= 0 {
		return nil, kinerr.New(kinerr.PhysicsParameterInvalid, op, "dtau must be finite and > 0", "dtau", dtau)
	}
	steps := math.Floor(tauF/dtau) + 2 // regular steps plus a possible closing sample
	if steps > float64(o.MaxSamples()) {
		return nil, kinerr.New(kinerr.PhysicsParameterInvalid, op, "step count exceeds the sample cap",
			"tauF", tauF, "dtau", dtau, "max", o.MaxSamples())
	}

	out := make([]spacetime.Point, 0, int(steps))
	for i := 0; ; i++ {
		tau := float64(i) * dtau
		if tau > tauF {
			break
		}
		out = append(out, s.at(tau))
	}

	last := out[len(out)-1].Tau
	switch {
	case tauF-last > o.NearZero()*math.Max(1, tauF):
		out = append(out, s.at(tauF))
	case last != tauF && len(out) > 1:
		out[len(out)-1] = s.at(tauF)
	}

	return out, nil
}

// prepareFixedCount validates a fixed-count request and resolves n.
func prepareFixedCount(op string, x0, t0, v0, alpha, tauF float64, n int, mode motion, o units.Options) (*sampler, int, error) {
	s, err := newSampler(op, x0, t0, v0, alpha, mode, o)
	if err != nil {
		return nil, 0, err
	}
	if err := validate.ProperTime(tauF); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		n = o.SampleCount()
	}
	if n < units.MinSampleCount || n > o.MaxSamples() {
		return nil, 0, kinerr.New(kinerr.PhysicsParameterInvalid, op, "sample count out of range",
			"n", n, "min", units.MinSampleCount, "max", o.MaxSamples())
	}
	if tauF == 0 {
		return nil, 0, kinerr.New(kinerr.PhysicsParameterInvalid, op, "tauF must be > 0 for a multi-sample worldline",
			"tauF", tauF, "n", n)
	}
	if err := s.reach(op, tauF); err != nil {
		return nil, 0, err
	}

	return s, n, nil
}

// fillRange writes samples lo..hi-1 of an n-point fixed-count worldline.
func fillRange(s *sampler, out []spacetime.Point, lo, hi int, tauF float64) {
	n := len(out)
	for i := lo; i < hi; i++ {
		tau := float64(i) / float64(n-1) * tauF
		if i == n-1 {
			tau = tauF
		}
		out[i] = s.at(tau)
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
