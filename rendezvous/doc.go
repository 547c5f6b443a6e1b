// Package rendezvous solves the two-point boundary value problem of special
// relativity: start at event A moving with velocity v0, arrive exactly at
// event B, under a single constant proper acceleration.
//
// Algorithm Outline:
//  1. Δx = x1 − x0, Δt = t1 − t0. Δt ≤ 0 is a causality violation,
//     |v0| ≥ 1 a domain error.
//  2. At rest and staying put (|Δx|, |v0| below the near-zero tolerance):
//     α = 0, τ_f = Δt.
//  3. β = Δx/(c·Δt); |β| ≥ 1 is a causality violation.
//  4. φ0 = artanh(v0).
//  5. Δφ = 2·(artanh(β) − φ0).
//  6. φ_f = φ0 + Δφ, α = c·(sinh φ_f − sinh φ0)/Δt.
//  7. τ_f = c·|Δφ|/|α|.
//  8. v_f = tanh(φ_f).
//  9. energy = |Δφ|.
//
// Step 5 follows from the identity
//
//	(cosh φ_f − cosh φ0)/(sinh φ_f − sinh φ0) = tanh((φ_f + φ0)/2),
//
// which is the average velocity Δx/(c·Δt) of any constant-proper-acceleration
// arc; setting it to β gives φ_f + φ0 = 2·artanh(β).
//
// Step 6 is evaluated as α = 2c·cosh(artanh β)·sinh(Δφ/2)/Δt, the product
// form of the sinh difference, so near-coasting requests keep full precision.
//
// The solution is unique. Impossible requests fail with a *kinerr.Error;
// a returned Solution is always valid.
package rendezvous
