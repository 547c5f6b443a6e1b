// SPDX-License-Identifier: MIT

package validate

import (
	"math"

	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/lightcone"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
)

// Position checks that both coordinates of e are finite and e.T ≥ 0.
//
// Errors: PositionInvalid.
func Position(e spacetime.Event) error {
	const op = "validate.Position"
	if !e.IsFinite() {
		return kinerr.New(kinerr.PositionInvalid, op, "coordinates must be finite", "x", e.X, "t", e.T)
	}
	if e.T < 0 {
		return kinerr.New(kinerr.PositionInvalid, op, "time must be >= 0", "x", e.X, "t", e.T)
	}

	return nil
}

// SourceTarget checks that target can be reached from source: target.T must
// exceed source.T and target − source must lie inside the light cone of
// source, widened by the configured cone margin (units.LightConeMargin by
// default). A nil source means "no source frame" and always passes.
//
// Errors: SourceFrameIncompatible.
func SourceTarget(source *spacetime.Event, target spacetime.Event, opts ...units.Option) error {
	const op = "validate.SourceTarget"
	if source == nil {
		return nil
	}
	dx, dt := target.Sub(*source)
	if !(dt > 0) {
		return kinerr.New(kinerr.SourceFrameIncompatible, op, "target time must exceed source time",
			"sourceT", source.T, "targetT", target.T)
	}
	o := units.NewOptions(opts...)
	if !lightcone.IsInsideLightCone(dx, dt, o.ConeMargin(), opts...) {
		return kinerr.New(kinerr.SourceFrameIncompatible, op, "target lies outside the source light cone",
			"deltaX", dx, "deltaT", dt, "margin", o.ConeMargin())
	}

	return nil
}

// PhysicsParams checks the raw inputs of a maneuver: deltaX and deltaT
// finite, deltaT > 0 and, when v0 is non-nil, v0 finite with |v0| < 1.
//
// Errors: PhysicsParameterInvalid.
func PhysicsParams(deltaX, deltaT float64, v0 *float64) error {
	const op = "validate.PhysicsParams"
	if !isFinite(deltaX) || !isFinite(deltaT) {
		return kinerr.New(kinerr.PhysicsParameterInvalid, op, "deltaX and deltaT must be finite",
			"deltaX", deltaX, "deltaT", deltaT)
	}
	if deltaT <= 0 {
		return kinerr.New(kinerr.PhysicsParameterInvalid, op, "deltaT must be > 0", "deltaT", deltaT)
	}
	if v0 != nil && (!isFinite(*v0) || math.Abs(*v0) >= 1) {
		return kinerr.New(kinerr.PhysicsParameterInvalid, op, "initial velocity must be finite with |v0| < 1",
			"v0", *v0)
	}

	return nil
}

// Velocity checks v is finite with |v| < 1.
//
// Errors: DomainOutOfRange.
func Velocity(v float64) error {
	if !isFinite(v) || math.Abs(v) >= 1 {
		return kinerr.New(kinerr.DomainOutOfRange, "validate.Velocity", "velocity must satisfy |v| < 1", "v", v)
	}

	return nil
}

// Acceleration checks a magnitude field: finite and ≥ 0. Signed accelerations
// returned by the rendezvous solver are not expected to pass this check.
//
// Errors: PhysicsParameterInvalid.
func Acceleration(a float64) error {
	if !isFinite(a) || a < 0 {
		return kinerr.New(kinerr.PhysicsParameterInvalid, "validate.Acceleration",
			"acceleration must be finite and >= 0", "alpha", a)
	}

	return nil
}

// ProperTime checks tau is finite and ≥ 0.
//
// Errors: PhysicsParameterInvalid.
func ProperTime(tau float64) error {
	if !isFinite(tau) || tau < 0 {
		return kinerr.New(kinerr.PhysicsParameterInvalid, "validate.ProperTime",
			"proper time must be finite and >= 0", "tau", tau)
	}

	return nil
}

// LorentzFactor checks gamma is finite and ≥ 1.
//
// Errors: DomainOutOfRange.
func LorentzFactor(gamma float64) error {
	if !isFinite(gamma) || gamma < 1 {
		return kinerr.New(kinerr.DomainOutOfRange, "validate.LorentzFactor",
			"Lorentz factor must be finite and >= 1", "gamma", gamma)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
