// Package api exposes the kinematics engine over HTTP/JSON.
//
// Routes:
//
//	POST /v1/rendezvous       solve a rendezvous maneuver
//	POST /v1/trajectory       fixed-count worldline sampling
//	POST /v1/trajectory/step  fixed-step worldline sampling
//	POST /v1/plan             validate, solve, sample and check in one call
//	POST /v1/validate         post-hoc trajectory report
//	GET  /v1/lightcone        separation of a displacement (dx, dt, margin)
//	GET  /healthz             liveness
//	GET  /metrics             prometheus metrics
//
// Fail-fast errors come back as {"error": {"kind", "message", "params"}}.
package api
