package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"errleak-demo/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init builds the service logger. This is the operator channel: every piece
// of failure detail the service keeps away from callers ends up here and
// nowhere else. The returned logger is handed down by injection; nothing in
// the request path reads the global.
func Init(cfg *config.Config) *zerolog.Logger {

	const prodStr string = "production"

	// Set global level based on environment
	switch cfg.Env {
	case prodStr:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var baseLogger zerolog.Logger

	if cfg.Env == prodStr {
		baseLogger = zerolog.New(os.Stdout)
	} else {
		baseLogger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
			NoColor:    false, // Enable colors
			PartsOrder: []string{
				"time", "level", "caller", "service", "env", "message", "err",
			},
			FormatLevel: func(i any) string {
				return strings.ToUpper(fmt.Sprintf("[%s]", i))
			},
			FormatCaller: func(caller any) string {
				return fmt.Sprintf("(%s)", caller)
			},
		})
	}

	baseLogger = baseLogger.With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Env).
		Logger()

	// Caller info helps while developing, costs too much in production
	if cfg.Env != prodStr {
		baseLogger = baseLogger.With().Caller().Logger()
	}

	// stray writers that reach the zerolog global land in the same sink
	log.Logger = baseLogger

	return &baseLogger
}
