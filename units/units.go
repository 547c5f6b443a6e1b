// SPDX-License-Identifier: MIT

package units

// Physical constants.
const (
	// C is the speed of light of the unit system (natural units).
	C = 1.0
)

// Numeric policy (single source of truth for float comparisons).
const (
	// NearZero is the tolerance for "is this zero" checks: the rest case of the
	// rendezvous solver and the zero-acceleration branch of the sampler.
	NearZero = 1e-12

	// RoundTripTolerance bounds |f⁻¹(f(x)) − x| for the velocity/rapidity
	// conversions over the open velocity domain.
	RoundTripTolerance = 1e-10

	// EndpointTolerance bounds the distance between a sampled endpoint and the
	// rendezvous target event.
	EndpointTolerance = 1e-9

	// LightConeMargin is the relative widening applied to the light cone when
	// checking source/target compatibility. It absorbs float noise for targets
	// placed exactly on the cone.
	LightConeMargin = 1e-9
)

// Sampling policy.
const (
	// DefaultSampleCount is the number of points produced by fixed-count
	// sampling when the caller does not ask for a specific count.
	DefaultSampleCount = 100

	// MinSampleCount is the smallest meaningful worldline: start and end.
	MinSampleCount = 2

	// MaxSampleCount caps any single sampling call.
	MaxSampleCount = 1_000_000
)
