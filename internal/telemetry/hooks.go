package telemetry

import (
	"errors"
	"log/slog"

	"toroute/pkg/router"
)

// LogHooks logs every navigation outcome.
func LogHooks(logger *slog.Logger) router.Hooks {
	return router.Hooks{
		OnNavigate: func(from, to router.State) {
			logger.Info("navigate",
				"from", from.Path,
				"to", to.Path,
				"has_args", !to.Args.IsZero(),
			)
		},
		OnNavigateError: func(to string, err error) {
			logger.Warn("navigate rejected",
				"to", to,
				"reason", Reason(err),
				"error", err,
			)
		},
	}
}

// Outcome labels used in logs and metrics.
const (
	ReasonOK       = "ok"
	ReasonNotFound = "not_found"
	ReasonInvalid  = "invalid_args"
	ReasonOther    = "error"
)

// Reason classifies a navigation error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ReasonOK
	case errors.Is(err, router.ErrRouteNotFound):
		return ReasonNotFound
	case errors.Is(err, router.ErrValidation):
		return ReasonInvalid
	default:
		return ReasonOther
	}
}
