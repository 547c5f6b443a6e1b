// Package validate is the single source of truth for the guard checks that
// run before and after the kinematics computations.
//
// Two styles live here on purpose:
//
//   - Input validators (Position, SourceTarget, PhysicsParams and the scalar
//     checks) fail fast with a *kinerr.Error. They run before a solver and
//     stop the computation at the first impossible input.
//   - Trajectory returns a Result that lists every problem found in an
//     already-sampled worldline; it never returns an error.
//
// Nothing is clamped: a value outside its domain is reported, not repaired.
package validate
