package apperror

// Kind classifies a failure. The set is closed on purpose: the renderer
// dispatches exhaustively over it, and anything it does not recognise is
// treated as unclassified, so a new kind can never skip sanitization by
// accident.
type Kind string

const (
	// DatabaseErr marks simulated backend failures. Its Detail carries the
	// raw driver text, connection string included.
	DatabaseErr Kind = "database_error"

	// Generic marks failures with nothing worth carrying: absent request
	// parameters and anything that arrives unclassified.
	Generic Kind = "generic"
)

// Sensitive reports whether the kind's Detail may hold material that has to
// stay on the operator channel. Unknown kinds report false, which means the
// renderer logs them without payload.
func (k Kind) Sensitive() bool {
	switch k {
	case DatabaseErr:
		return true
	default:
		return false
	}
}
