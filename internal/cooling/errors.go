package cooling

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrParse            = errors.New("parse error")
	ErrDegenerateInput  = errors.New("degenerate input")
	ErrInconsistentData = errors.New("inconsistent data")
	ErrNonPhysicalRate  = errors.New("non-physical cooling rate")
)

// Error is a terminal failure of a single calculation.
type Error struct {
	Kind  error
	Field string // offending field or quantity, e.g. "T1", "k", "discovery_time"
	Msg   string // message shown verbatim to the end user
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

// KindName returns a stable machine-readable name for the error kind.
func (e *Error) KindName() string {
	switch e.Kind {
	case ErrParse:
		return "parse_error"
	case ErrDegenerateInput:
		return "degenerate_input"
	case ErrInconsistentData:
		return "inconsistent_data"
	case ErrNonPhysicalRate:
		return "non_physical_rate"
	default:
		return "unknown"
	}
}

func parseErrorf(field, format string, args ...any) error {
	return &Error{Kind: ErrParse, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func degenerate(field, msg string) error {
	return &Error{Kind: ErrDegenerateInput, Field: field, Msg: msg}
}

func inconsistent(quantity string) error {
	return &Error{
		Kind:  ErrInconsistentData,
		Field: quantity,
		Msg:   fmt.Sprintf("inconsistent data: cannot compute %s", quantity),
	}
}

func nonPhysical(k float64) error {
	return &Error{
		Kind:  ErrNonPhysicalRate,
		Field: "k",
		Msg:   fmt.Sprintf("k came out <= 0 (%s); check the data", formatFloat(k)),
	}
}
