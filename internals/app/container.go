package app

import (
	"errleak-demo/internals/modules/search"
	"errleak-demo/pkg/render"

	"github.com/rs/zerolog"
)

type Container struct {
	Logger        *zerolog.Logger
	Renderer      *render.Renderer
	searchHandler *search.Handler
}

// NewContainer wires the object graph. The renderer owns the logger for
// everything written on the error path, handlers receive the same logger
// for their own request-scoped events.
func NewContainer(logger *zerolog.Logger) *Container {

	renderer := render.New(logger)

	catalogRepo := search.NewRepository()
	searchHandler := search.NewHandler(catalogRepo, renderer, logger)

	return &Container{
		Logger:        logger,
		Renderer:      renderer,
		searchHandler: searchHandler,
	}
}
