package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/caddyshack/internal/platform/logging"
)

type RouterOptions struct {
	CompressEnabled    bool
	TrustProxyHeaders  bool
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerGolfBagPageRoutes(mux, handler)
	registerGolfBagAPIRoutes(mux, handler)

	return RequestTracing(
		ProxyHeaders(opts.TrustProxyHeaders,
			RequestID(
				RequestLogging(logger,
					Compress(opts.CompressEnabled,
						CORS(opts.CORSAllowedOrigins,
							recoverPanic(logger, mux)))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				if isAPIPath(r.URL.Path) {
					writeInternalError(ctx, w)
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
