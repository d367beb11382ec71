package apperror

import "net/http"

// HTTPStatus maps a kind to the status the caller sees. Every kind maps to
// 500 here: the caller must not be able to infer the failure class from the
// status line, the body, or anything else on the wire.
func HTTPStatus(kind Kind) int {
	switch kind {
	case DatabaseErr, Generic:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
