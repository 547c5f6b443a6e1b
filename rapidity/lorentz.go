// SPDX-License-Identifier: MIT

package rapidity

import (
	"math"

	"github.com/katalvlaran/worldline/kinerr"
)

// LorentzFactor returns γ = 1/sqrt(1−v²) = cosh(artanh(v)).
//
// Domain: |v| < 1. Fails with DomainOutOfRange otherwise.
func LorentzFactor(v float64) (float64, error) {
	if math.IsNaN(v) || v <= -1 || v >= 1 {
		return 0, kinerr.New(kinerr.DomainOutOfRange, "rapidity.LorentzFactor",
			"velocity must satisfy |v| < 1", "v", v)
	}

	return 1 / math.Sqrt(1-v*v), nil
}

// FromLorentzFactor returns the non-negative rapidity whose Lorentz factor is
// gamma, i.e. arcosh(γ). The sign of the motion is not recoverable from γ.
func FromLorentzFactor(gamma float64) (float64, error) {
	phi, err := Arcosh(gamma)
	if err != nil {
		return 0, kinerr.New(kinerr.DomainOutOfRange, "rapidity.FromLorentzFactor",
			"Lorentz factor must be >= 1", "gamma", gamma)
	}

	return phi, nil
}

// AddVelocities composes two collinear velocities: the velocity, in the
// background frame, of a body moving at v inside a frame that itself moves at
// u. Rapidities add, so the result is tanh(artanh(u) + artanh(v)), equal to
// (u+v)/(1+uv).
func AddVelocities(u, v float64) (float64, error) {
	phiU, err := VelocityToRapidity(u)
	if err != nil {
		return 0, err
	}
	phiV, err := VelocityToRapidity(v)
	if err != nil {
		return 0, err
	}

	return RapidityToVelocity(phiU + phiV), nil
}
