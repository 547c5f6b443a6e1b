// Package observability wires zerolog logging and prometheus metrics for the
// worldline binary. The kinematics packages never import it.
//
// HTTP middleware (RequestID, RequestLogger) tags every request with an id,
// logs one http_request event and feeds worldline_http_* metrics. Solver
// handlers report their outcome by error kind through RecordSolverOutcome.
package observability
