// Package units holds the process-wide read-only constants of the kinematics
// engine and the functional options that let a caller override them per call.
//
// Every number used by the solver, the sampler and the validators is named
// here once. Nothing in this package is mutable at run time: options produce
// a fresh Options value for each call and never touch package state.
//
// Natural units are used throughout: c = 1, so velocities are fractions of
// light speed and x and t share the same unit.
package units
