package render

import (
	"errors"
	"io"
	"net/http"

	"errleak-demo/pkg/apperror"

	"github.com/rs/zerolog"
)

// errorBody is everything a caller may learn about a failure. It is a
// compile-time constant: no code path interpolates error data into it, so
// the failure response is identical bytes no matter what went wrong.
const errorBody = "<h1>Error!</h1><p>An unexpected error occurred. Please try again later.</p>"

// Renderer consumes classified errors and produces exactly two artifacts per
// failure: one operator log record and one sanitized client response. The
// logger is injected, never global, so tests can capture the operator
// channel.
type Renderer struct {
	log *zerolog.Logger
}

func New(log *zerolog.Logger) *Renderer {
	return &Renderer{log: log}
}

// Error writes the failure response for err. The full Detail flows into the
// log event and nowhere else; status and body are independent of the error's
// content. Errors that are not *apperror.Error are classified as Generic on
// the spot, so nothing skips this boundary.
func (r *Renderer) Error(w http.ResponseWriter, reqID string, err error) {
	var e *apperror.Error
	if !errors.As(err, &e) {
		e = &apperror.Error{Kind: apperror.Generic}
	}

	evt := r.log.Error().Str("request_id", reqID).Str("kind", string(e.Kind))
	if e.Op != "" {
		evt = evt.Str("op", e.Op)
	}
	if e.Kind.Sensitive() {
		evt = evt.Str("detail", e.Detail)
	}

	switch e.Kind {
	case apperror.DatabaseErr:
		evt.Msg("database operation failed")
	case apperror.Generic:
		evt.Msg("an unexpected application error occurred")
	default:
		// a kind nobody registered still gets the fixed body below
		evt.Msg("unclassified error kind")
	}

	r.HTML(w, apperror.HTTPStatus(e.Kind), errorBody)
}

// HTML writes an HTML response. Every page the service serves goes through
// here, so headers and write-error handling live in one place.
func (r *Renderer) HTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := io.WriteString(w, body); err != nil {
		r.log.Error().Err(err).Msg("error in writing response body to client")
	}
}
