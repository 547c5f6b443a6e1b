// SPDX-License-Identifier: MIT

package validate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/units"
	"github.com/katalvlaran/worldline/validate"
)

func ptr(v float64) *float64 { return &v }

//----------------------------------------------------------------------------//
// Input validators
//----------------------------------------------------------------------------//

func TestPosition(t *testing.T) {
	assert.NoError(t, validate.Position(spacetime.Event{X: -5, T: 0}))
	assert.NoError(t, validate.Position(spacetime.Event{X: 3, T: 7}))

	for _, e := range []spacetime.Event{
		{X: math.NaN(), T: 1},
		{X: 0, T: math.Inf(1)},
		{X: 0, T: -0.5},
	} {
		assert.ErrorIs(t, validate.Position(e), kinerr.ErrPositionInvalid, "event=%+v", e)
	}
}

func TestSourceTarget(t *testing.T) {
	src := &spacetime.Event{X: 0, T: 0}

	assert.NoError(t, validate.SourceTarget(nil, spacetime.Event{X: 1e6, T: 0}))
	assert.NoError(t, validate.SourceTarget(src, spacetime.Event{X: 10, T: 20}))
	assert.NoError(t, validate.SourceTarget(src, spacetime.Event{X: 20, T: 20}), "boundary is inside")

	err := validate.SourceTarget(src, spacetime.Event{X: 0, T: 0})
	assert.ErrorIs(t, err, kinerr.ErrSourceFrameIncompatible)

	err = validate.SourceTarget(src, spacetime.Event{X: 1, T: -1})
	assert.ErrorIs(t, err, kinerr.ErrSourceFrameIncompatible)

	err = validate.SourceTarget(src, spacetime.Event{X: 200, T: 100})
	require.ErrorIs(t, err, kinerr.ErrSourceFrameIncompatible)
	var kerr *kinerr.Error
	require.ErrorAs(t, err, &kerr)
	dx, ok := kerr.Param("deltaX")
	assert.True(t, ok)
	assert.Equal(t, 200.0, dx)
}

// TestSourceTarget_MarginOption flips a near-boundary target.
func TestSourceTarget_MarginOption(t *testing.T) {
	src := &spacetime.Event{}
	target := spacetime.Event{X: 101, T: 100}

	assert.Error(t, validate.SourceTarget(src, target))
	assert.NoError(t, validate.SourceTarget(src, target, units.WithConeMargin(0.02)))
}

func TestPhysicsParams(t *testing.T) {
	assert.NoError(t, validate.PhysicsParams(10, 20, nil))
	assert.NoError(t, validate.PhysicsParams(-10, 20, ptr(-0.99)))

	cases := map[string]struct {
		dx, dt float64
		v0     *float64
	}{
		"dx NaN":      {math.NaN(), 1, nil},
		"dt Inf":      {0, math.Inf(1), nil},
		"dt zero":     {0, 0, nil},
		"dt negative": {0, -3, nil},
		"v0 one":      {0, 1, ptr(1)},
		"v0 NaN":      {0, 1, ptr(math.NaN())},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, validate.PhysicsParams(tc.dx, tc.dt, tc.v0), kinerr.ErrPhysicsParameterInvalid)
		})
	}
}

func TestScalarValidators(t *testing.T) {
	assert.NoError(t, validate.Velocity(0.999))
	assert.ErrorIs(t, validate.Velocity(-1), kinerr.ErrDomainOutOfRange)
	assert.ErrorIs(t, validate.Velocity(math.NaN()), kinerr.ErrDomainOutOfRange)

	assert.NoError(t, validate.Acceleration(0))
	assert.ErrorIs(t, validate.Acceleration(-0.1), kinerr.ErrPhysicsParameterInvalid)
	assert.ErrorIs(t, validate.Acceleration(math.Inf(1)), kinerr.ErrPhysicsParameterInvalid)

	assert.NoError(t, validate.ProperTime(0))
	assert.ErrorIs(t, validate.ProperTime(-1e-9), kinerr.ErrPhysicsParameterInvalid)

	assert.NoError(t, validate.LorentzFactor(1))
	assert.ErrorIs(t, validate.LorentzFactor(0.99), kinerr.ErrDomainOutOfRange)
}

//----------------------------------------------------------------------------//
// Trajectory
//----------------------------------------------------------------------------//

func TestTrajectory_Valid(t *testing.T) {
	pts := []spacetime.Point{
		{X: 0, T: 0, V: 0, Gamma: 1, Tau: 0},
		{X: 0.1, T: 1, V: 0.2, Gamma: 1.02, Tau: 0.99},
		{X: 0.4, T: 2, V: 0.4, Gamma: 1.09, Tau: 1.95},
	}
	res := validate.Trajectory(pts)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestTrajectory_InsufficientLength(t *testing.T) {
	res := validate.Trajectory([]spacetime.Point{{Gamma: 1}})
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "insufficient length")

	res = validate.Trajectory(nil)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors[0], "insufficient length")
}

// TestTrajectory_CollectsAllViolations: superluminal + non-monotonic time.
func TestTrajectory_CollectsAllViolations(t *testing.T) {
	pts := []spacetime.Point{
		{X: 0, T: 0, V: 0, Gamma: 1, Tau: 0},
		{X: 2, T: 1, V: 1.2, Gamma: 1, Tau: 1},
		{X: 2, T: 0.5, V: 0.1, Gamma: 1.005, Tau: 2},
	}
	res := validate.Trajectory(pts)
	assert.False(t, res.Valid)
	require.GreaterOrEqual(t, len(res.Errors), 2)

	var speed, time bool
	for _, msg := range res.Errors {
		speed = speed || strings.Contains(msg, "light speed")
		time = time || strings.Contains(msg, "coordinate time")
	}
	assert.True(t, speed, "missing speed violation in %v", res.Errors)
	assert.True(t, time, "missing time violation in %v", res.Errors)
}

func TestTrajectory_GammaAndProperTime(t *testing.T) {
	pts := []spacetime.Point{
		{T: 0, Gamma: 0.5, Tau: 1},
		{T: 1, Gamma: math.NaN(), Tau: 1},
	}
	res := validate.Trajectory(pts)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)
	assert.Contains(t, res.Errors[0], "point 0: Lorentz factor")
	assert.Contains(t, res.Errors[1], "point 1: Lorentz factor")
	assert.Contains(t, res.Errors[2], "proper time")
}
