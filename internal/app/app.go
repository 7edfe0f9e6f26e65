package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/caddyshack/internal/config"
	"github.com/riskibarqy/caddyshack/internal/interfaces/httpapi"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
	"github.com/riskibarqy/caddyshack/internal/usecase"
)

// NewHTTPServer wires the configured store into the golf bag service and
// router. The returned cleanup releases the store.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	golfBagSvc := usecase.NewGolfBagService(store.repo, logger)

	views, err := httpapi.NewViews()
	if err != nil {
		_ = store.close()
		return nil, nil, fmt.Errorf("parse views: %w", err)
	}

	handler := httpapi.NewHandler(golfBagSvc, views, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CompressEnabled:    cfg.CompressEnabled,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = store.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, store.close, nil
}
