package search

import (
	"fmt"
	"net/http"

	middle "errleak-demo/internals/middleware"
	"errleak-demo/pkg/render"

	"github.com/rs/zerolog"
)

type Handler struct {
	catalog  *Repository
	renderer *render.Renderer
	log      *zerolog.Logger
}

func NewHandler(catalog *Repository, renderer *render.Renderer, log *zerolog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		renderer: renderer,
		log:      log,
	}
}

// VulnerableSearch interpolates raw repository errors straight into the
// response body. It exists as the before side of the demo, do not copy it.
func (h *Handler) VulnerableSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middle.RequestIDFromContext(ctx)

	q, err := searchQuery(r)
	if err != nil {
		h.renderer.Error(w, reqID, err)
		return
	}

	h.log.Info().Str("request_id", reqID).Str("product", q.Product).Msg("received vulnerable search request")

	result, err := h.catalog.Search(ctx, q.Product)
	if err != nil {
		h.log.Error().Str("request_id", reqID).Err(err).Msg("exposing raw error to client")
		h.renderer.HTML(w, http.StatusInternalServerError, fmt.Sprintf(
			"<h1>Error occurred!</h1><p>We encountered an issue:</p><pre>%s</pre>", err))
		return
	}

	h.renderer.HTML(w, http.StatusOK, fmt.Sprintf("<h1>Search Result</h1><p>%s</p>", result))
}

// SecureSearch runs the same lookup but hands every failure to the
// renderer, so the client sees only the fixed error page while the full
// detail goes to the log.
func (h *Handler) SecureSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middle.RequestIDFromContext(ctx)

	q, err := searchQuery(r)
	if err != nil {
		h.renderer.Error(w, reqID, err)
		return
	}

	h.log.Info().Str("request_id", reqID).Str("product", q.Product).Msg("received secure search request")

	result, err := h.catalog.Search(ctx, q.Product)
	if err != nil {
		h.renderer.Error(w, reqID, err)
		return
	}

	h.renderer.HTML(w, http.StatusOK, fmt.Sprintf("<h1>Search Result</h1><p>%s</p>", result))
}
