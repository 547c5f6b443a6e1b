// Package worldline is a 1+1D special-relativistic kinematics engine: it
// plans how a body moving at constant proper acceleration gets from one
// spacetime event to another, and samples the resulting worldline.
//
// What is in the box?
//
//	• Rapidity math: velocity ↔ rapidity, Lorentz factor, velocity addition
//	• Light-cone geometry: causal checks, separation class, isochrones
//	• Validators: fail-fast input checks and a collected trajectory report
//	• Rendezvous solver: closed-form α, τ_f and final state for a target event
//	• Trajectory sampler: fixed-count, fixed-step and parallel sampling
//
// Natural units are used throughout (c = 1 unless overridden per call), so
// velocities are fractions of light speed and x and t share one unit.
//
// Layout:
//
//	units/        constants, numeric tolerances and functional options
//	kinerr/       fail-fast error kinds and sentinels
//	spacetime/    Event and Point value types, interval and boost
//	rapidity/     artanh/arsinh/arcosh, v ↔ φ, Lorentz factor
//	lightcone/    IsInsideLightCone, Classify, Isochrone
//	validate/     scalar validators and Trajectory reports
//	rendezvous/   Solve, SolveEvents
//	trajectory/   At, Generate, GenerateWithStep, GenerateParallel, Rendezvous
//	internal/     config, observability, HTTP API for the binary
//	cmd/worldline  CLI and server
//
// Quick ASCII picture of a rendezvous from rest at the origin:
//
//	 t
//	 │      • target (10, 20)
//	 │     ╱
//	 │   ╱   worldline bends toward the light cone
//	 │ ╱
//	 •────────── x
//
// The core packages are pure functions over float64 values: no global state,
// no logging and no goroutines except inside GenerateParallel.
//
//	go get github.com/katalvlaran/worldline
package worldline
