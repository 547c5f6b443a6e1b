// Package kinerr defines the fail-fast error type shared by every kinematics
// package.
//
// An *Error carries a Kind, the operation that rejected the request and the
// offending parameters, so a caller can surface a precise diagnostic.
// Callers match kinds with errors.Is against the sentinels below:
//
//	_, err := rendezvous.Solve(0, 0, 0, 200, 100)
//	if errors.Is(err, kinerr.ErrCausalityViolation) {
//		// target is outside the light cone
//	}
//
// Trajectory-level validation does not use this package: it returns a
// collected report (validate.Result) instead of stopping at the first problem.
package kinerr
