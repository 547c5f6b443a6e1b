// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/worldline/internal/observability"
	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/lightcone"
	"github.com/katalvlaran/worldline/rendezvous"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/trajectory"
	"github.com/katalvlaran/worldline/units"
	"github.com/katalvlaran/worldline/validate"
)

// maxBodyBytes bounds request bodies; /v1/validate carries whole worldlines.
const maxBodyBytes = 16 << 20

type handlers struct {
	opts []units.Option
}

type rendezvousRequest struct {
	X0 float64 `json:"x0"`
	T0 float64 `json:"t0"`
	V0 float64 `json:"v0"`
	X1 float64 `json:"x1"`
	T1 float64 `json:"t1"`
}

type trajectoryRequest struct {
	X0      float64 `json:"x0"`
	T0      float64 `json:"t0"`
	V0      float64 `json:"v0"`
	Alpha   float64 `json:"alpha"`
	TauF    float64 `json:"tau_f"`
	N       int     `json:"n"`       // 0: configured default
	Dtau    float64 `json:"dtau"`    // step mode only
	Workers int     `json:"workers"` // > 0 selects the parallel sampler
}

type planRequest struct {
	From spacetime.Event `json:"from"`
	To   spacetime.Event `json:"to"`
	V0   float64         `json:"v0"`
	N    int             `json:"n"`
}

type validateRequest struct {
	Points []spacetime.Point `json:"points"`
}

type pointsResponse struct {
	Points []spacetime.Point `json:"points"`
}

type lightconeResponse struct {
	Inside     bool    `json:"inside"`
	Separation string  `json:"separation"`
	Interval   float64 `json:"interval"`
}

func (h *handlers) handleRendezvous(w http.ResponseWriter, r *http.Request) {
	const op = "rendezvous.Solve"
	var req rendezvousRequest
	if !decode(w, r, &req) {
		return
	}
	sol, err := rendezvous.Solve(req.X0, req.T0, req.V0, req.X1, req.T1, h.opts...)
	observability.RecordSolverOutcome(op, err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sol)
}

func (h *handlers) handleTrajectory(w http.ResponseWriter, r *http.Request) {
	var req trajectoryRequest
	if !decode(w, r, &req) {
		return
	}

	var (
		op  = "trajectory.Generate"
		pts []spacetime.Point
		err error
	)
	if req.Workers > 0 {
		op = "trajectory.GenerateParallel"
		pts, err = trajectory.GenerateParallel(r.Context(), req.X0, req.T0, req.V0, req.Alpha, req.TauF, req.N, req.Workers, h.opts...)
	} else {
		pts, err = trajectory.Generate(req.X0, req.T0, req.V0, req.Alpha, req.TauF, req.N, h.opts...)
	}
	observability.RecordSolverOutcome(op, err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, pointsResponse{Points: pts})
}

func (h *handlers) handleTrajectoryStep(w http.ResponseWriter, r *http.Request) {
	const op = "trajectory.GenerateWithStep"
	var req trajectoryRequest
	if !decode(w, r, &req) {
		return
	}
	pts, err := trajectory.GenerateWithStep(req.X0, req.T0, req.V0, req.Alpha, req.TauF, req.Dtau, h.opts...)
	observability.RecordSolverOutcome(op, err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, pointsResponse{Points: pts})
}

func (h *handlers) handlePlan(w http.ResponseWriter, r *http.Request) {
	const op = "trajectory.Rendezvous"
	var req planRequest
	if !decode(w, r, &req) {
		return
	}
	plan, err := trajectory.Rendezvous(req.From, req.To, req.V0, req.N, h.opts...)
	observability.RecordSolverOutcome(op, err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, plan)
}

func (h *handlers) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, r, http.StatusOK, validate.Trajectory(req.Points))
}

func (h *handlers) handleLightcone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	o := units.NewOptions(h.opts...)

	dx, err := queryFloat(q.Get("dx"), math.NaN())
	if err != nil {
		writeBadRequest(w, r, "dx: "+err.Error())
		return
	}
	dt, err := queryFloat(q.Get("dt"), math.NaN())
	if err != nil {
		writeBadRequest(w, r, "dt: "+err.Error())
		return
	}
	margin, err := queryFloat(q.Get("margin"), o.ConeMargin())
	if err != nil {
		writeBadRequest(w, r, "margin: "+err.Error())
		return
	}

	displacement := spacetime.Event{X: dx, T: dt}
	writeJSON(w, r, http.StatusOK, lightconeResponse{
		Inside:     lightcone.IsInsideLightCone(dx, dt, margin, h.opts...),
		Separation: lightcone.Classify(dx, dt, h.opts...).String(),
		Interval:   spacetime.Event{}.Interval(displacement, o.SpeedOfLight()),
	})
}

func healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// queryFloat parses a required finite query value; def is used when s is
// empty and def is not NaN.
func queryFloat(s string, def float64) (float64, error) {
	if s == "" {
		if math.IsNaN(def) {
			return 0, errors.New("missing required query parameter")
		}
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("query value %q is not a finite number", s)
	}
	return v, nil
}

// decode reads a JSON body into dst, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeBadRequest(w, r, fmt.Sprintf("decode request: %v", err))
		return false
	}
	return true
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Params  []errorParam `json:"params,omitempty"`
}

// errorParam mirrors kinerr.Param; Value holds a string for NaN and ±Inf,
// which JSON numbers cannot carry.
type errorParam struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind kinerr.Kind) int {
	switch kind {
	case kinerr.CausalityViolation, kinerr.SourceFrameIncompatible:
		return http.StatusUnprocessableEntity
	case kinerr.Unknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var kerr *kinerr.Error
	if !errors.As(err, &kerr) {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: errorDetail{Kind: "Internal", Message: err.Error()}})
		return
	}

	detail := errorDetail{Kind: kerr.Kind.String(), Message: kerr.Error()}
	for _, p := range kerr.Params {
		var v any = p.Value
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			v = strconv.FormatFloat(p.Value, 'g', -1, 64)
		}
		detail.Params = append(detail.Params, errorParam{Name: p.Name, Value: v})
	}
	writeJSON(w, r, statusFor(kerr.Kind), errorBody{Error: detail})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, r, http.StatusBadRequest, errorBody{Error: errorDetail{Kind: "BadRequest", Message: msg}})
}

// writeJSON encodes v before touching the response, so a value JSON cannot
// carry (±Inf, NaN) turns into a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("encode response")
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorBody{Error: errorDetail{Kind: "Internal", Message: "response could not be encoded: " + err.Error()}})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
