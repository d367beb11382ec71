package app

import (
	"net/http"
	"time"

	middle "errleak-demo/internals/middleware"
	"errleak-demo/internals/modules/search"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	homeBody     = "<h1>Welcome! Try /vulnerable-search?product=test or /secure-search?product=test</h1>"
	notFoundBody = "<h1>404 Not Found</h1>"
)

func RegisterRoutes(c *Container) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middle.RequestID)
	r.Use(middle.Logger(c.Logger))
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		c.Renderer.HTML(w, http.StatusOK, homeBody)
	})

	search.Routes(r, c.searchHandler)

	// unknown paths and unsupported methods get the same page, neither
	// reveals which routes exist
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		c.Renderer.HTML(w, http.StatusNotFound, notFoundBody)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		c.Renderer.HTML(w, http.StatusNotFound, notFoundBody)
	})

	return r
}
