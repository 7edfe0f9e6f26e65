package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	"github.com/riskibarqy/caddyshack/internal/usecase"
)

type golfBagRequest struct {
	Player   string `json:"player" validate:"required,max=100"`
	Capacity *int   `json:"capacity" validate:"omitempty,min=0,max=100"`
}

func (r golfBagRequest) capacity() int {
	if r.Capacity == nil {
		return 0
	}
	return *r.Capacity
}

type golfBagDTO struct {
	ID       int64     `json:"id"`
	Player   string    `json:"player"`
	Capacity int       `json:"capacity"`
	Clubs    []clubDTO `json:"clubs,omitempty"`
}

type clubDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) ListGolfBagsAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGolfBagsAPI")
	defer span.End()

	bags, err := h.golfBagService.ListBags(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list golf bags failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]golfBagDTO, 0, len(bags))
	for _, bag := range bags {
		items = append(items, golfBagToDTO(bag))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGolfBagAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGolfBagAPI")
	defer span.End()

	bagID, err := parseBagID(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bag, err := h.golfBagService.GetBag(ctx, bagID)
	if err != nil {
		h.logAPIError(ctx, "get golf bag failed", bagID, err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, golfBagToDTO(bag))
}

func (h *Handler) CreateGolfBagAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGolfBagAPI")
	defer span.End()

	req, err := h.decodeGolfBagRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bag, err := h.golfBagService.CreateBag(ctx, usecase.CreateBagInput{
		Player:   req.Player,
		Capacity: req.capacity(),
	})
	if err != nil {
		h.logAPIError(ctx, "create golf bag failed", 0, err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/api/v1"+bagPath(bag.ID))
	writeSuccess(ctx, w, http.StatusCreated, golfBagToDTO(bag))
}

func (h *Handler) UpdateGolfBagAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGolfBagAPI")
	defer span.End()

	bagID, err := parseBagID(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req, err := h.decodeGolfBagRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bag, err := h.golfBagService.UpdateBag(ctx, usecase.UpdateBagInput{
		BagID:    bagID,
		Player:   req.Player,
		Capacity: req.capacity(),
	})
	if err != nil {
		h.logAPIError(ctx, "update golf bag failed", bagID, err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, golfBagToDTO(bag))
}

func (h *Handler) DeleteGolfBagAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGolfBagAPI")
	defer span.End()

	bagID, err := parseBagID(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.golfBagService.DeleteBag(ctx, bagID); err != nil {
		h.logAPIError(ctx, "delete golf bag failed", bagID, err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) decodeGolfBagRequest(r *http.Request) (golfBagRequest, error) {
	var req golfBagRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return golfBagRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(r.Context(), req); err != nil {
		return golfBagRequest{}, err
	}
	return req, nil
}

// logAPIError keeps client mistakes at warn; only unexpected failures are
// errors.
func (h *Handler) logAPIError(ctx context.Context, msg string, bagID int64, err error) {
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, "bag_id", bagID, "error", err)
		return
	}
	h.logger.WarnContext(ctx, msg, "bag_id", bagID, "error", err)
}

func golfBagToDTO(bag golfbag.Bag) golfBagDTO {
	out := golfBagDTO{
		ID:       bag.ID,
		Player:   bag.Player,
		Capacity: bag.Capacity,
	}
	for _, club := range bag.Clubs {
		out.Clubs = append(out.Clubs, clubDTO{ID: club.ID, Name: club.Name})
	}
	return out
}
