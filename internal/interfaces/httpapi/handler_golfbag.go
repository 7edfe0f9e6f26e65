package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	"github.com/riskibarqy/caddyshack/internal/usecase"
)

func (h *Handler) ListGolfBags(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGolfBags")
	defer span.End()

	bags, err := h.golfBagService.ListBags(ctx)
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	rows := make([]bagRow, 0, len(bags))
	for _, bag := range bags {
		rows = append(rows, bagRow{ID: bag.ID, Player: bag.Player, Capacity: bag.Capacity})
	}
	h.renderPage(ctx, w, http.StatusOK, viewIndex, bagListPage{Title: "Golf Bags", Bags: rows})
}

func (h *Handler) ShowGolfBag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ShowGolfBag")
	defer span.End()

	bagID, err := parseBagID(r.PathValue("id"))
	if err != nil {
		h.renderNotFound(ctx, w)
		return
	}

	bag, err := h.golfBagService.GetBag(ctx, bagID)
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, http.StatusOK, viewShow, detailPage(bag, "", nil))
}

func (h *Handler) NewGolfBag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NewGolfBag")
	defer span.End()

	h.renderPage(ctx, w, http.StatusOK, viewNew, bagFormPage{Title: "Add a Golf Bag"})
}

func (h *Handler) CreateGolfBag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGolfBag")
	defer span.End()

	form, err := decodeBagForm(r)
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	capacity, verr := h.checkBagForm(ctx, form)
	if verr.Empty() {
		bag, err := h.golfBagService.CreateBag(ctx, usecase.CreateBagInput{
			Player:   form.Player,
			Capacity: capacity,
		})
		if err == nil {
			http.Redirect(w, r, bagPath(bag.ID), http.StatusSeeOther)
			return
		}
		if !errors.As(err, &verr) {
			h.renderError(ctx, w, err)
			return
		}
	}

	h.logger.DebugContext(ctx, "create golf bag rejected", "fields", verr.Fields)
	h.renderPage(ctx, w, http.StatusUnprocessableEntity, viewNew, bagFormPage{
		Title:  "Add a Golf Bag",
		Form:   form,
		Errors: verr.Fields,
	})
}

func (h *Handler) EditGolfBag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EditGolfBag")
	defer span.End()

	bagID, err := parseBagID(r.PathValue("id"))
	if err != nil {
		h.renderNotFound(ctx, w)
		return
	}

	bag, err := h.golfBagService.GetBagForEdit(ctx, bagID)
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, http.StatusOK, viewEdit, bagFormPage{
		Title: "Edit GolfBag",
		BagID: bag.ID,
		Form:  bagFormFrom(bag),
	})
}

func (h *Handler) UpdateGolfBag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGolfBag")
	defer span.End()

	bagID, err := parseBagID(r.PathValue("id"))
	if err != nil {
		h.renderNotFound(ctx, w)
		return
	}

	form, err := decodeBagForm(r)
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	capacity, verr := h.checkBagForm(ctx, form)
	if verr.Empty() {
		_, err := h.golfBagService.UpdateBag(ctx, usecase.UpdateBagInput{
			BagID:    bagID,
			Player:   form.Player,
			Capacity: capacity,
		})
		if err == nil {
			http.Redirect(w, r, bagPath(bagID), http.StatusSeeOther)
			return
		}
		if !errors.As(err, &verr) {
			h.renderError(ctx, w, err)
			return
		}
	}

	// A bag deleted in the meantime must still answer 404, not 422.
	if _, err := h.golfBagService.GetBagForEdit(ctx, bagID); err != nil {
		h.renderError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, http.StatusUnprocessableEntity, viewEdit, bagFormPage{
		Title:  "Edit GolfBag",
		BagID:  bagID,
		Form:   form,
		Errors: verr.Fields,
	})
}

// PostGolfBagAction dispatches the two POST routes that share a shape:
// /golfbags/delete/{id} and /golfbags/{id}/clubs.
func (h *Handler) PostGolfBagAction(w http.ResponseWriter, r *http.Request) {
	first, second := r.PathValue("first"), r.PathValue("second")
	switch {
	case first == "delete":
		h.deleteGolfBag(w, r, second)
	case second == "clubs":
		h.addClub(w, r, first)
	default:
		h.renderNotFound(r.Context(), w)
	}
}

func (h *Handler) deleteGolfBag(w http.ResponseWriter, r *http.Request, rawID string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGolfBag")
	defer span.End()

	bagID, err := parseBagID(rawID)
	if err != nil {
		h.renderNotFound(ctx, w)
		return
	}

	if err := h.golfBagService.DeleteBag(ctx, bagID); err != nil {
		h.renderError(ctx, w, err)
		return
	}

	http.Redirect(w, r, "/golfbags", http.StatusSeeOther)
}

func (h *Handler) addClub(w http.ResponseWriter, r *http.Request, rawID string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddClub")
	defer span.End()

	bagID, err := parseBagID(rawID)
	if err != nil {
		h.renderNotFound(ctx, w)
		return
	}

	form, err := decodeClubForm(r)
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	_, err = h.golfBagService.AddClub(ctx, usecase.AddClubInput{BagID: bagID, Name: form.Name})
	if err == nil {
		http.Redirect(w, r, bagPath(bagID), http.StatusSeeOther)
		return
	}

	var verr *usecase.ValidationError
	if !errors.As(err, &verr) {
		h.renderError(ctx, w, err)
		return
	}

	bag, err := h.golfBagService.GetBag(ctx, bagID)
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}
	h.renderPage(ctx, w, http.StatusUnprocessableEntity, viewShow, detailPage(bag, form.Name, verr.Fields))
}

func detailPage(bag golfbag.Bag, clubName string, errs map[string]string) bagDetailPage {
	clubs := make([]clubRow, 0, len(bag.Clubs))
	for _, club := range bag.Clubs {
		clubs = append(clubs, clubRow{ID: club.ID, Name: club.Name})
	}
	return bagDetailPage{
		Title: bag.Player,
		Bag: bagDetail{
			ID:       bag.ID,
			Player:   bag.Player,
			Capacity: bag.Capacity,
			Clubs:    clubs,
		},
		ClubName: clubName,
		Errors:   errs,
	}
}

func bagPath(bagID int64) string {
	return "/golfbags/" + strconv.FormatInt(bagID, 10)
}
