package config

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/gomonad/logger"
	"github.com/kbukum/gomonad/observability"
)

// ShutdownFunc flushes and releases whatever Apply started.
type ShutdownFunc func(context.Context) error

// Apply initializes the global logger from s and, when a telemetry endpoint
// is configured, the OTLP meter and tracer providers. The returned function
// shuts the providers down; it is never nil.
func Apply(ctx context.Context, s *Settings) (ShutdownFunc, error) {
	logger.Init(s.Logging)

	if !s.Telemetry.Enabled() {
		logger.Debug("telemetry disabled", logger.Fields(logger.FieldComponent, "config"))
		return func(context.Context) error { return nil }, nil
	}

	mp, err := observability.InitMeter(ctx, &s.Telemetry)
	if err != nil {
		return nil, err
	}
	tp, err := observability.InitTracer(ctx, &s.Telemetry)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		return stderrors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
