// SPDX-License-Identifier: MIT

package kinerr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind classifies a fail-fast error.
type Kind int

const (
	// Unknown is the zero Kind; it is never produced by this module.
	Unknown Kind = iota
	// PositionInvalid: non-finite coordinate or negative time.
	PositionInvalid
	// SourceFrameIncompatible: target not later than, or not inside the light cone of, the source.
	SourceFrameIncompatible
	// PhysicsParameterInvalid: non-finite or out-of-range solver/sampler input.
	PhysicsParameterInvalid
	// CausalityViolation: the request needs deltaT <= 0 or superluminal motion.
	CausalityViolation
	// DomainOutOfRange: argument outside a function's mathematical domain.
	DomainOutOfRange
)

// String returns the stable name of k.
func (k Kind) String() string {
	switch k {
	case PositionInvalid:
		return "PositionInvalid"
	case SourceFrameIncompatible:
		return "SourceFrameIncompatible"
	case PhysicsParameterInvalid:
		return "PhysicsParameterInvalid"
	case CausalityViolation:
		return "CausalityViolation"
	case DomainOutOfRange:
		return "DomainOutOfRange"
	default:
		return "Unknown"
	}
}

// Sentinels, one per Kind. errors.Is(err, ErrX) holds for every *Error of the
// matching Kind, wrapped or not.
var (
	ErrPositionInvalid         = errors.New("kinerr: position invalid")
	ErrSourceFrameIncompatible = errors.New("kinerr: source frame incompatible")
	ErrPhysicsParameterInvalid = errors.New("kinerr: physics parameter invalid")
	ErrCausalityViolation      = errors.New("kinerr: causality violation")
	ErrDomainOutOfRange        = errors.New("kinerr: domain out of range")
)

// Sentinel returns the sentinel error for k, or nil for Unknown.
func (k Kind) Sentinel() error {
	switch k {
	case PositionInvalid:
		return ErrPositionInvalid
	case SourceFrameIncompatible:
		return ErrSourceFrameIncompatible
	case PhysicsParameterInvalid:
		return ErrPhysicsParameterInvalid
	case CausalityViolation:
		return ErrCausalityViolation
	case DomainOutOfRange:
		return ErrDomainOutOfRange
	default:
		return nil
	}
}

// Param is one offending input, kept in call order.
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Error is the fail-fast error produced by domain checks, validators and the
// rendezvous solver.
type Error struct {
	Kind   Kind
	Op     string // e.g. "rendezvous.Solve"
	Msg    string
	Params []Param
}

// New builds an *Error. params are name/value pairs; a trailing name without
// a value is ignored.
func New(kind Kind, op, msg string, params ...any) *Error {
	e := &Error{Kind: kind, Op: op, Msg: msg}
	for i := 0; i+1 < len(params); i += 2 {
		name, ok := params[i].(string)
		if !ok {
			continue
		}
		e.Params = append(e.Params, Param{Name: name, Value: toFloat(params[i+1])})
	}

	return e
}

// Error implements error: "op: msg (name=value, ...)".
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Msg)
	if len(e.Params) > 0 {
		b.WriteString(" (")
		for i, p := range e.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Name)
			b.WriteByte('=')
			b.WriteString(strconv.FormatFloat(p.Value, 'g', -1, 64))
		}
		b.WriteByte(')')
	}

	return b.String()
}

// Is reports whether target is the sentinel of e.Kind, or an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if s := e.Kind.Sentinel(); s != nil && target == s {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}

	return false
}

// Param returns the value recorded under name.
func (e *Error) Param(name string) (float64, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p.Value, true
		}
	}

	return 0, false
}

// KindOf extracts the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Unknown
}

// toFloat converts a param value. Numeric types convert directly; anything
// else goes through its fmt form and becomes NaN when that is not a number.
func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	}
	f, err := strconv.ParseFloat(fmt.Sprint(v), 64)
	if err != nil {
		return math.NaN()
	}

	return f
}
