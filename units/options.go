// SPDX-License-Identifier: MIT

package units

import "math"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSpeedOfLightInvalid = "units: WithSpeedOfLight: c must be finite and > 0"
	panicNearZeroInvalid     = "units: WithNearZero: tol must be finite and >= 0"
	panicConeMarginInvalid   = "units: WithConeMargin: margin must be finite and > -1"
	panicSampleCountInvalid  = "units: WithSampleCount: n must be >= 2"
	panicMaxSamplesInvalid   = "units: WithMaxSamples: n must be >= 2"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	c           float64 // > 0; C
	nearZero    float64 // >= 0; NearZero
	coneMargin  float64 // > -1; LightConeMargin
	sampleCount int     // >= 2; DefaultSampleCount
	maxSamples  int     // >= 2; MaxSampleCount
}

// WithSpeedOfLight overrides the speed of light used by the solver, the
// sampler and the light-cone checks.
//
// Panics when c is not finite or not strictly positive.
func WithSpeedOfLight(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicSpeedOfLightInvalid)
	}

	return func(o *Options) { o.c = c }
}

// WithNearZero overrides the near-zero tolerance.
func WithNearZero(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicNearZeroInvalid)
	}

	return func(o *Options) { o.nearZero = tol }
}

// WithConeMargin overrides the relative light-cone margin used by the
// source/target compatibility check. Negative values narrow the cone.
func WithConeMargin(margin float64) Option {
	if math.IsNaN(margin) || math.IsInf(margin, 0) || margin <= -1 {
		panic(panicConeMarginInvalid)
	}

	return func(o *Options) { o.coneMargin = margin }
}

// WithSampleCount overrides the default fixed-count sample size.
func WithSampleCount(n int) Option {
	if n < MinSampleCount {
		panic(panicSampleCountInvalid)
	}

	return func(o *Options) { o.sampleCount = n }
}

// WithMaxSamples overrides the per-call sample cap.
func WithMaxSamples(n int) Option {
	if n < MinSampleCount {
		panic(panicMaxSamplesInvalid)
	}

	return func(o *Options) { o.maxSamples = n }
}

// NewOptions resolves user options on top of the package defaults.
// A nil Option is skipped.
//
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := Options{
		c:           C,
		nearZero:    NearZero,
		coneMargin:  LightConeMargin,
		sampleCount: DefaultSampleCount,
		maxSamples:  MaxSampleCount,
	}
	for _, set := range opts {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}
	if o.sampleCount > o.maxSamples {
		o.sampleCount = o.maxSamples
	}

	return o
}

// SpeedOfLight returns the effective c.
func (o Options) SpeedOfLight() float64 { return o.c }

// NearZero returns the effective near-zero tolerance.
func (o Options) NearZero() float64 { return o.nearZero }

// ConeMargin returns the effective light-cone margin.
func (o Options) ConeMargin() float64 { return o.coneMargin }

// SampleCount returns the effective default sample count.
func (o Options) SampleCount() int { return o.sampleCount }

// MaxSamples returns the effective per-call sample cap.
func (o Options) MaxSamples() int { return o.maxSamples }
