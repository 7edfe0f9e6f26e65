package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	"github.com/riskibarqy/caddyshack/internal/usecase"
)

// bagForm keeps raw strings so a rejected submission re-renders exactly what
// the user typed. Capacity accepts a sign; the range is checked by the service.
type bagForm struct {
	Player   string
	Capacity string `validate:"omitempty,numeric"`
}

type clubForm struct {
	Name string
}

func decodeBagForm(r *http.Request) (bagForm, error) {
	if err := r.ParseForm(); err != nil {
		return bagForm{}, fmt.Errorf("%w: invalid form body: %v", usecase.ErrInvalidInput, err)
	}
	return bagForm{
		Player:   formValue(r.PostForm, "Player"),
		Capacity: strings.TrimSpace(formValue(r.PostForm, "Capacity")),
	}, nil
}

func decodeClubForm(r *http.Request) (clubForm, error) {
	if err := r.ParseForm(); err != nil {
		return clubForm{}, fmt.Errorf("%w: invalid form body: %v", usecase.ErrInvalidInput, err)
	}
	return clubForm{Name: formValue(r.PostForm, "Name")}, nil
}

// formValue matches field names case-insensitively; an exact match wins.
func formValue(values url.Values, field string) string {
	if v, ok := values[field]; ok && len(v) > 0 {
		return v[0]
	}
	for key, v := range values {
		if strings.EqualFold(key, field) && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func bagFormFrom(bag golfbag.Bag) bagForm {
	return bagForm{Player: bag.Player, Capacity: strconv.Itoa(bag.Capacity)}
}

// checkBagForm converts the raw capacity. When the form itself is malformed
// the player is checked here too, since the service is never reached.
func (h *Handler) checkBagForm(ctx context.Context, form bagForm) (int, *usecase.ValidationError) {
	verr := usecase.NewValidationError()

	var fieldErrs validator.ValidationErrors
	if err := h.validator.StructCtx(ctx, form); errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), strings.ToLower(fe.Field())+" must be a whole number")
		}
	}

	capacity := 0
	if form.Capacity != "" && verr.Empty() {
		n, err := strconv.Atoi(form.Capacity)
		if err != nil {
			verr.Add("Capacity", "capacity must be a whole number")
		}
		capacity = n
	}

	if !verr.Empty() {
		if err := golfbag.ValidatePlayer(strings.TrimSpace(form.Player)); err != nil {
			verr.Add("Player", err.Error())
		}
	}
	return capacity, verr
}
