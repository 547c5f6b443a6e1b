// Package rapidity converts between velocity and rapidity and provides the
// inverse hyperbolic functions the rest of the engine is built on.
//
// Rapidity φ is the hyperbolic angle of a velocity: v = tanh(φ). Unlike
// velocity it is additive under successive boosts and unbounded, which makes
// constant proper acceleration a straight line in φ.
//
//	v ∈ (-1, 1)  ⇄  φ ∈ ℝ
//
// All functions are pure. Domain violations return a *kinerr.Error of kind
// DomainOutOfRange; nothing is clamped.
package rapidity
