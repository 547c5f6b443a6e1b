// SPDX-License-Identifier: MIT

package rapidity

import (
	"math"

	"github.com/katalvlaran/worldline/kinerr"
)

// Artanh returns the inverse hyperbolic tangent 0.5·ln((1+x)/(1−x)).
//
// Domain: −1 < x < 1. Fails with DomainOutOfRange otherwise (NaN included).
func Artanh(x float64) (float64, error) {
	if math.IsNaN(x) || x <= -1 || x >= 1 {
		return 0, kinerr.New(kinerr.DomainOutOfRange, "rapidity.Artanh",
			"argument must satisfy -1 < x < 1", "x", x)
	}

	return 0.5 * math.Log((1+x)/(1-x)), nil
}

// Arsinh returns ln(x + sqrt(x²+1)). Total over the reals.
func Arsinh(x float64) float64 {
	// math.Asinh keeps precision for large |x|, where x²+1 overflows.
	return math.Asinh(x)
}

// Arcosh returns ln(x + sqrt(x²−1)).
//
// Domain: x ≥ 1. Fails with DomainOutOfRange otherwise.
func Arcosh(x float64) (float64, error) {
	if math.IsNaN(x) || x < 1 {
		return 0, kinerr.New(kinerr.DomainOutOfRange, "rapidity.Arcosh",
			"argument must satisfy x >= 1", "x", x)
	}

	return math.Log(x + math.Sqrt(x*x-1)), nil
}

// VelocityToRapidity returns φ = artanh(v).
//
// The DomainOutOfRange error of Artanh is returned as is.
func VelocityToRapidity(v float64) (float64, error) {
	return Artanh(v)
}

// RapidityToVelocity returns v = tanh(φ). Total; |v| < 1 for every φ.
//
// tanh rounds to ±1 in float64 once |φ| exceeds ~19; such results are pulled
// back to the nearest representable value inside the open interval.
func RapidityToVelocity(phi float64) float64 {
	v := math.Tanh(phi)
	switch {
	case v >= 1:
		return maxSubluminal
	case v <= -1:
		return -maxSubluminal
	}

	return v
}

// maxSubluminal is the largest float64 strictly below 1.
var maxSubluminal = math.Nextafter(1, 0)
