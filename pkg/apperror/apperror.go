package apperror

import (
	"errors"
	"fmt"
)

// Error is the classified form every request-path failure takes before it
// reaches the rendering stage. Kind decides what each channel may see,
// Detail is the operator-only payload. An Error is built once at the
// failure site, handed up exactly one layer and consumed exactly once by
// the renderer; it is never wrapped further or retried.
type Error struct {
	Kind   Kind   // classification, closed set in kind.go
	Op     string // <layer>.<domain>.<action>
	Detail string // internal failure text, may embed secrets
}

// Error implements the built-in error interface. This is the operator-facing
// rendering: Detail is included verbatim, so the result is only safe for
// trusted channels.
func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Detail)
	case e.Detail != "":
		return e.Detail
	case e.Op != "":
		return e.Op
	default:
		return "unknown error"
	}
}

func New(kind Kind, op string, detail string) *Error {
	return &Error{
		Kind:   kind,
		Op:     op,
		Detail: detail,
	}
}

func IsKind(err error, kind Kind) bool {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind == kind
	}
	return false
}
