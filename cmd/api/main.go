package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"errleak-demo/config"
	"errleak-demo/internals/app"
	"errleak-demo/internals/server"
	"errleak-demo/pkg/logger"
)

func main() {
	// Load envs
	cfg, err := config.LoadConfig("env.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Done channel of ctx closes when a signal arrives
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize base/global logger, shadows the stdlib import from here on
	log := logger.Init(cfg)
	log.Info().Msg("logger initialized")

	// Inject dependencies
	container := app.NewContainer(log)
	log.Info().Msg("dependencies initialized")

	// Register routes
	router := app.RegisterRoutes(container)
	log.Info().Msg("routes registered")

	// Start HTTP server, it serves from its own goroutine
	srv := server.New(fmt.Sprintf(":%d", cfg.Port), router, log)
	srv.Start()

	// main goroutine waits for graceful shutdown
	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("graceful shutdown complete")
}
