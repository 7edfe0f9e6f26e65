// Package observability starts and stops the process-wide telemetry:
// OpenTelemetry export to Uptrace, Pyroscope profiling and a pprof listener.
package observability

import (
	"context"
	"errors"

	"github.com/riskibarqy/caddyshack/internal/config"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
)

// Runtime owns whatever Start switched on. The zero value shuts down cleanly.
type Runtime struct {
	logger        *logging.Logger
	flushTraces   func(context.Context) error
	stopProfiling func() error
	pprof         *pprofServer
}

// Start brings up every enabled component. On failure the components already
// running are stopped before the error is returned.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	rt.flushTraces = startUptrace(cfg, logger)

	stop, err := startPyroscope(cfg, logger)
	if err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, err
	}
	rt.stopProfiling = stop

	pprof, err := startPprof(cfg, logger)
	if err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, err
	}
	rt.pprof = pprof

	return rt, nil
}

// Shutdown stops the pprof listener, the profiler and then flushes spans.
func (rt *Runtime) Shutdown(ctx context.Context) error {
	if rt == nil {
		return nil
	}

	var errs []error
	if rt.pprof != nil {
		if err := rt.pprof.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if rt.stopProfiling != nil {
		if err := rt.stopProfiling(); err != nil {
			errs = append(errs, err)
		}
	}
	if rt.flushTraces != nil {
		if err := rt.flushTraces(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PprofAddr reports the bound pprof address, or "" when pprof is off.
func (rt *Runtime) PprofAddr() string {
	if rt == nil || rt.pprof == nil {
		return ""
	}
	return rt.pprof.addr()
}
