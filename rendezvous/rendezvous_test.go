// SPDX-License-Identifier: MIT

package rendezvous_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/rendezvous"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
)

// endpoint evaluates the closed-form worldline at τ_f for a solution, using
// the product form of the cosh and sinh differences.
func endpoint(x0, t0, v0 float64, s rendezvous.Solution, c float64) (x, t float64) {
	half := s.Alpha * s.TauF / (2 * c)
	mid := math.Atanh(v0) + half
	k := 2 * c * c * (math.Sinh(half) / s.Alpha)

	return x0 + k*math.Sinh(mid), t0 + k/c*math.Cosh(mid)
}

//----------------------------------------------------------------------------//
// Known solutions
//----------------------------------------------------------------------------//

// TestSolve_FromRest: (0,0) → (10,20) gives Δφ = ln 3, α = 1/15, v_f = 0.8.
func TestSolve_FromRest(t *testing.T) {
	s, err := rendezvous.Solve(0, 0, 0, 10, 20)
	require.NoError(t, err)

	assert.True(t, s.IsValid)
	assert.InDelta(t, math.Log(3), s.DeltaPhi, 1e-12)
	assert.InDelta(t, math.Log(3), s.PhiF, 1e-12)
	assert.InDelta(t, 1.0/15.0, s.Alpha, 1e-12)
	assert.InDelta(t, 15*math.Log(3), s.TauF, 1e-9)
	assert.InDelta(t, 0.8, s.VF, 1e-12)
	assert.InDelta(t, math.Log(3), s.EnergyConsumed, 1e-12)

	x, tt := endpoint(0, 0, 0, s, 1)
	assert.InDelta(t, 10.0, x, units.EndpointTolerance)
	assert.InDelta(t, 20.0, tt, units.EndpointTolerance)
}

// TestSolve_TrivialRest: no displacement, no velocity → stay at rest.
func TestSolve_TrivialRest(t *testing.T) {
	s, err := rendezvous.Solve(0, 0, 0, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, rendezvous.Solution{TauF: 5, IsValid: true}, s)
	assert.Equal(t, 0.0, s.Alpha)
	assert.Equal(t, 0.0, s.EnergyConsumed)
}

// TestSolve_Deceleration: v0 = 0.8 to an average of 0.5 needs Δφ = −ln 3.
func TestSolve_Deceleration(t *testing.T) {
	s, err := rendezvous.Solve(0, 0, 0.8, 10, 20)
	require.NoError(t, err)

	assert.InDelta(t, -math.Log(3), s.DeltaPhi, 1e-12)
	assert.InDelta(t, 0.0, s.PhiF, 1e-12)
	assert.InDelta(t, 0.0, s.VF, 1e-12)
	assert.Less(t, s.Alpha, 0.0)
	assert.Greater(t, s.TauF, 0.0)
	assert.InDelta(t, math.Log(3), s.EnergyConsumed, 1e-12)

	x, tt := endpoint(0, 0, 0.8, s, 1)
	assert.InDelta(t, 10.0, x, units.EndpointTolerance)
	assert.InDelta(t, 20.0, tt, units.EndpointTolerance)
}

// TestSolve_Coasting: v0 already equals the average velocity.
func TestSolve_Coasting(t *testing.T) {
	s, err := rendezvous.Solve(0, 0, 0.5, 10, 20)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Alpha)
	assert.Equal(t, 0.0, s.DeltaPhi)
	assert.Equal(t, 0.0, s.EnergyConsumed)
	assert.Equal(t, 0.5, s.VF)
	assert.InDelta(t, 20*math.Sqrt(0.75), s.TauF, 1e-12)
	assert.True(t, s.IsValid)
}

// TestSolve_NearCoasting: Δφ = 2e-8 still lands within the endpoint tolerance.
func TestSolve_NearCoasting(t *testing.T) {
	x1 := 20 * math.Tanh(math.Atanh(0.5)+1e-8)
	s, err := rendezvous.Solve(0, 0, 0.5, x1, 20)
	require.NoError(t, err)

	assert.InDelta(t, 2e-8, s.DeltaPhi, 1e-12)
	assert.Greater(t, s.Alpha, 0.0)
	assert.LessOrEqual(t, s.TauF, 20.0)

	x, tt := endpoint(0, 0, 0.5, s, 1)
	assert.InDelta(t, x1, x, units.EndpointTolerance)
	assert.InDelta(t, 20.0, tt, units.EndpointTolerance)
}

// TestSolve_SpeedOfLightOption uses c = 2 (x in units where light covers 2 per t).
func TestSolve_SpeedOfLightOption(t *testing.T) {
	c := 2.0
	s, err := rendezvous.Solve(1, 1, 0.1, 11, 21, units.WithSpeedOfLight(c))
	require.NoError(t, err)

	x, tt := endpoint(1, 1, 0.1, s, c)
	assert.InDelta(t, 11.0, x, units.EndpointTolerance)
	assert.InDelta(t, 21.0, tt, units.EndpointTolerance)

	// |Δx| = 30 over Δt = 20 is superluminal at c = 1 but fine at c = 2.
	_, err = rendezvous.Solve(0, 0, 0, 30, 20)
	assert.ErrorIs(t, err, kinerr.ErrCausalityViolation)
	_, err = rendezvous.Solve(0, 0, 0, 30, 20, units.WithSpeedOfLight(c))
	assert.NoError(t, err)
}

func TestSolveEvents(t *testing.T) {
	a, err := rendezvous.Solve(1, 2, 0.3, 4, 12)
	require.NoError(t, err)
	b, err := rendezvous.SolveEvents(spacetime.Event{X: 1, T: 2}, spacetime.Event{X: 4, T: 12}, 0.3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

//----------------------------------------------------------------------------//
// Failures
//----------------------------------------------------------------------------//

func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name               string
		x0, t0, v0, x1, t1 float64
		want               error
	}{
		{"OutsideLightCone", 0, 0, 0, 200, 100, kinerr.ErrCausalityViolation},
		{"OnLightCone", 0, 0, 0, 100, 100, kinerr.ErrCausalityViolation},
		{"SameTime", 0, 5, 0, 1, 5, kinerr.ErrCausalityViolation},
		{"Past", 0, 5, 0, 0, 4, kinerr.ErrCausalityViolation},
		{"LightSpeedStart", 0, 0, 1, 1, 5, kinerr.ErrDomainOutOfRange},
		{"SuperluminalStart", 0, 0, -1.5, 1, 5, kinerr.ErrDomainOutOfRange},
		{"NaNInput", math.NaN(), 0, 0, 1, 5, kinerr.ErrPhysicsParameterInvalid},
		{"InfInput", 0, 0, 0, 1, math.Inf(1), kinerr.ErrPhysicsParameterInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := rendezvous.Solve(tc.x0, tc.t0, tc.v0, tc.x1, tc.t1)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, s.IsValid, "failed solve must not return a usable solution")
		})
	}
}

// TestSolve_CausalityErrorCarriesBeta exposes β for diagnostics.
func TestSolve_CausalityErrorCarriesBeta(t *testing.T) {
	_, err := rendezvous.Solve(0, 0, 0, 200, 100)
	var kerr *kinerr.Error
	require.ErrorAs(t, err, &kerr)
	beta, ok := kerr.Param("beta")
	require.True(t, ok)
	assert.Equal(t, 2.0, beta)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestSolve_Properties sweeps random causal requests: exact arrival,
// energy ≥ 0, 0 ≤ τ_f ≤ Δt, sign(α) = sign(Δφ).
func TestSolve_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		x0 := rng.Float64()*200 - 100
		t0 := rng.Float64() * 50
		dt := 0.01 + rng.Float64()*100
		beta := (rng.Float64()*2 - 1) * 0.9
		v0 := (rng.Float64()*2 - 1) * 0.9
		x1, t1 := x0+beta*dt, t0+dt

		s, err := rendezvous.Solve(x0, t0, v0, x1, t1)
		require.NoError(t, err, "case %d", i)
		assert.GreaterOrEqual(t, s.EnergyConsumed, 0.0)
		assert.GreaterOrEqual(t, s.TauF, 0.0)
		assert.Less(t, math.Abs(s.VF), 1.0)
		if s.Alpha == 0 {
			continue
		}
		assert.Equal(t, math.Signbit(s.DeltaPhi), math.Signbit(s.Alpha), "case %d", i)
		assert.LessOrEqual(t, s.TauF, dt*(1+1e-9), "case %d", i)

		x, tt := endpoint(x0, t0, v0, s, 1)
		scale := math.Max(1, math.Max(math.Abs(x1), math.Abs(t1)))
		assert.InDelta(t, x1, x, units.EndpointTolerance*scale, "case %d", i)
		assert.InDelta(t, t1, tt, units.EndpointTolerance*scale, "case %d", i)
	}
}
