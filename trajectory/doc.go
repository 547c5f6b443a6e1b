// Package trajectory expands a constant-proper-acceleration maneuver into a
// worldline sampled in proper time.
//
// Closed form for one sample at proper time τ, with φ0 = artanh(v0):
//
//	φ(τ) = φ0 + α·τ/c
//	x(τ) = x0 + (c²/α)·(cosh φ(τ) − cosh φ0)
//	t(τ) = t0 + (c/α)·(sinh φ(τ) − sinh φ0)
//	v(τ) = tanh φ(τ),  γ(τ) = cosh φ(τ)
//
// The differences are evaluated in product form so small α keeps its digits:
//
//	cosh φ − cosh φ0 = 2·sinh((φ+φ0)/2)·sinh(α·τ/2c)
//	sinh φ − sinh φ0 = 2·cosh((φ+φ0)/2)·sinh(α·τ/2c)
//
// A span whose endpoint overflows float64 (|φ| past roughly 710) is rejected
// with PhysicsParameterInvalid instead of producing infinite samples.
//
// When |α| is below the near-zero tolerance the fixed-origin zero-acceleration
// form is used instead: x = x0, t = t0 + τ, v = v0, γ = 1/sqrt(1−v0²).
// NOTE: that branch holds x fixed even when v0 ≠ 0, so it is uniform motion
// only for a body at rest; callers wanting translation must add v0·τ
// themselves. Rendezvous samples a coasting body with true inertial motion
// and any nonzero solver α on the hyperbolic arc, however small.
//
// Sampling modes:
//   - Generate: N points evenly spaced in [0, τ_f], both ends included;
//     τ_f must be positive so no two samples coincide.
//   - GenerateWithStep: τ = 0, dτ, 2dτ, … ≤ τ_f, with the last sample moved
//     or appended so it lands exactly on τ_f.
//   - GenerateParallel: Generate computed by a bounded worker pool.
//
// Every sample depends only on the shared start state and its own τ, so
// results are deterministic and ordered by increasing τ in every mode.
package trajectory
