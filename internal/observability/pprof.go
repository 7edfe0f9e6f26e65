package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/caddyshack/internal/config"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
)

// PprofHandler serves the runtime profiles under /debug/pprof/.
func PprofHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

type pprofServer struct {
	srv      *http.Server
	listener net.Listener
	logger   *logging.Logger
}

// startPprof binds before returning so a taken port fails startup instead of
// being logged from a goroutine.
func startPprof(cfg config.Config, logger *logging.Logger) (*pprofServer, error) {
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil, nil
	}

	ln, err := net.Listen("tcp", cfg.PprofAddr)
	if err != nil {
		return nil, fmt.Errorf("listen pprof on %s: %w", cfg.PprofAddr, err)
	}

	p := &pprofServer{
		srv: &http.Server{
			Handler:           PprofHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
		logger:   logger,
	}

	go func() {
		logger.Info("pprof server starting", "addr", ln.Addr().String())
		if err := p.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return p, nil
}

func (p *pprofServer) addr() string {
	return p.listener.Addr().String()
}

func (p *pprofServer) shutdown(ctx context.Context) error {
	if err := p.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("stop pprof server: %w", err)
	}
	p.logger.Info("pprof server stopped")
	return nil
}
