package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
	"github.com/riskibarqy/caddyshack/internal/usecase"
)

type Handler struct {
	golfBagService *usecase.GolfBagService
	views          *Views
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(golfBagService *usecase.GolfBagService, views *Views, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if views == nil {
		views = MustViews()
	}

	return &Handler{
		golfBagService: golfBagService,
		views:          views,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/golfbags", http.StatusFound)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// renderPage falls back to a bare 500 when the template itself fails.
func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, status int, view string, data any) {
	if err := h.views.render(ctx, w, status, view, data); err != nil {
		h.logger.ErrorContext(ctx, "render view failed", "view", view, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) renderNotFound(ctx context.Context, w http.ResponseWriter) {
	h.renderPage(ctx, w, http.StatusNotFound, viewNotFound, messagePage{
		Title:   "Not Found",
		Message: "The golf bag you asked for does not exist.",
	})
}

// renderError turns a use case error into the matching HTML page.
func (h *Handler) renderError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.renderNotFound(ctx, w)
	case errors.Is(err, usecase.ErrInvalidInput):
		h.renderPage(ctx, w, http.StatusBadRequest, viewError, messagePage{
			Title:   "Bad Request",
			Message: err.Error(),
		})
	default:
		h.logger.ErrorContext(ctx, "golf bag request failed", "error", err)
		h.renderPage(ctx, w, http.StatusInternalServerError, viewError, messagePage{
			Title:   "Error",
			Message: "internal server error",
		})
	}
}

// parseBagID accepts positive integers only, mirroring an int route
// constraint.
func parseBagID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: golf bag id %q", usecase.ErrNotFound, raw)
	}
	return id, nil
}
