package observability

import (
	"context"

	"github.com/riskibarqy/caddyshack/internal/config"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

func uptraceOptions(cfg config.Config) []uptrace.Option {
	return []uptrace.Option{
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(attribute.String("caddyshack.store", cfg.StoreDriver)),
	}
}

// startUptrace installs the global tracer provider. The returned func flushes
// pending spans; it is a no-op when Uptrace is off.
func startUptrace(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	if !cfg.UptraceEnabled {
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }
	}

	uptrace.ConfigureOpentelemetry(uptraceOptions(cfg)...)
	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return func(ctx context.Context) error {
		logger.Info("flushing traces")
		return uptrace.Shutdown(ctx)
	}
}
