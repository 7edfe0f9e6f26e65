package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	"github.com/riskibarqy/caddyshack/internal/infrastructure/repository/memory"
)

func newGolfBagService(seed []golfbag.Bag) *GolfBagService {
	return NewGolfBagService(memory.NewGolfBagRepository(seed), nil)
}

func TestGolfBagService_CreateThenList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newGolfBagService(nil)

	created, err := service.CreateBag(ctx, CreateBagInput{Player: "  Joe ", Capacity: 10})
	if err != nil {
		t.Fatalf("create bag: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected created bag to have an id")
	}
	if created.Player != "Joe" {
		t.Fatalf("expected trimmed player, got %q", created.Player)
	}

	bags, err := service.ListBags(ctx)
	if err != nil {
		t.Fatalf("list bags: %v", err)
	}
	if len(bags) != 1 || bags[0].Player != "Joe" || bags[0].Capacity != 10 {
		t.Fatalf("unexpected bags: %+v", bags)
	}
}

func TestGolfBagService_CreateValidation(t *testing.T) {
	t.Parallel()

	service := newGolfBagService(nil)

	tests := []struct {
		name       string
		input      CreateBagInput
		wantFields []string
	}{
		{name: "blank player", input: CreateBagInput{Player: "   ", Capacity: 3}, wantFields: []string{"Player"}},
		{name: "negative capacity", input: CreateBagInput{Player: "Joe", Capacity: -1}, wantFields: []string{"Capacity"}},
		{name: "both", input: CreateBagInput{Player: strings.Repeat("x", golfbag.MaxPlayerLength+1), Capacity: golfbag.MaxCapacity + 1}, wantFields: []string{"Player", "Capacity"}},
		{name: "multibyte player over limit", input: CreateBagInput{Player: strings.Repeat("é", golfbag.MaxPlayerLength+1)}, wantFields: []string{"Player"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateBag(context.Background(), tt.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			for _, field := range tt.wantFields {
				if _, ok := verr.Fields[field]; !ok {
					t.Fatalf("expected %s to be reported, got %+v", field, verr.Fields)
				}
			}
		})
	}

	bags, err := service.ListBags(context.Background())
	if err != nil {
		t.Fatalf("list bags: %v", err)
	}
	if len(bags) != 0 {
		t.Fatalf("expected nothing to be stored, got %d bags", len(bags))
	}
}

func TestGolfBagService_CreateMultibytePlayer(t *testing.T) {
	t.Parallel()

	service := newGolfBagService(nil)
	player := strings.Repeat("é", 60)

	created, err := service.CreateBag(context.Background(), CreateBagInput{Player: player, Capacity: 12})
	if err != nil {
		t.Fatalf("create bag with %d-byte player: %v", len(player), err)
	}
	if created.Player != player {
		t.Fatalf("unexpected player: %q", created.Player)
	}

	club, err := service.AddClub(context.Background(), AddClubInput{BagID: created.ID, Name: strings.Repeat("ß", 40)})
	if err != nil {
		t.Fatalf("add club with multibyte name: %v", err)
	}
	if club.BagID != created.ID {
		t.Fatalf("unexpected club bag id: %d", club.BagID)
	}
}

func TestGolfBagService_GetBagIncludesClubs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newGolfBagService([]golfbag.Bag{{
		Player:   "Joe",
		Capacity: 10,
		Clubs:    []golfbag.Club{{Name: "Driver"}, {Name: "Putter"}},
	}})

	bag, err := service.GetBag(ctx, 1)
	if err != nil {
		t.Fatalf("get bag: %v", err)
	}
	if len(bag.Clubs) != 2 || bag.Clubs[0].Name != "Driver" {
		t.Fatalf("expected clubs to be loaded, got %+v", bag.Clubs)
	}

	forEdit, err := service.GetBagForEdit(ctx, 1)
	if err != nil {
		t.Fatalf("get bag for edit: %v", err)
	}
	if forEdit.Clubs != nil {
		t.Fatalf("expected clubs to be left unloaded, got %+v", forEdit.Clubs)
	}
}

func TestGolfBagService_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newGolfBagService(nil)

	if _, err := service.GetBag(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetBagForEdit(ctx, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("edit: expected ErrNotFound, got %v", err)
	}
	if _, err := service.UpdateBag(ctx, UpdateBagInput{BagID: 42, Player: "Joe"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := service.DeleteBag(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
	if _, err := service.AddClub(ctx, AddClubInput{BagID: 42, Name: "Driver"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("add club: expected ErrNotFound, got %v", err)
	}
}

func TestGolfBagService_UpdateReplacesFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newGolfBagService([]golfbag.Bag{{Player: "Joe", Capacity: 10}})

	updated, err := service.UpdateBag(ctx, UpdateBagInput{BagID: 1, Player: "Jim", Capacity: 12})
	if err != nil {
		t.Fatalf("update bag: %v", err)
	}
	if updated.Player != "Jim" || updated.Capacity != 12 {
		t.Fatalf("unexpected updated bag: %+v", updated)
	}

	got, err := service.GetBagForEdit(ctx, 1)
	if err != nil {
		t.Fatalf("get bag: %v", err)
	}
	if got.Player != "Jim" || got.Capacity != 12 {
		t.Fatalf("expected stored bag to change, got %+v", got)
	}

	if _, err := service.UpdateBag(ctx, UpdateBagInput{BagID: 1, Player: "", Capacity: 12}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank player, got %v", err)
	}
	got, err = service.GetBagForEdit(ctx, 1)
	if err != nil {
		t.Fatalf("get bag: %v", err)
	}
	if got.Player != "Jim" {
		t.Fatalf("expected invalid update to leave bag untouched, got %+v", got)
	}
}

func TestGolfBagService_DeleteRemovesBagAndClubs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newGolfBagService([]golfbag.Bag{
		{Player: "Joe", Capacity: 10, Clubs: []golfbag.Club{{Name: "Driver"}}},
		{Player: "Jim", Capacity: 12},
	})

	if err := service.DeleteBag(ctx, 1); err != nil {
		t.Fatalf("delete bag: %v", err)
	}

	bags, err := service.ListBags(ctx)
	if err != nil {
		t.Fatalf("list bags: %v", err)
	}
	if len(bags) != 1 || bags[0].Player != "Jim" {
		t.Fatalf("expected only Jim to remain, got %+v", bags)
	}
	if err := service.DeleteBag(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected second delete to be not found, got %v", err)
	}
}

func TestGolfBagService_AddClub(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newGolfBagService([]golfbag.Bag{{Player: "Joe", Capacity: 10}})

	club, err := service.AddClub(ctx, AddClubInput{BagID: 1, Name: " 7 Iron "})
	if err != nil {
		t.Fatalf("add club: %v", err)
	}
	if club.ID == 0 || club.BagID != 1 || club.Name != "7 Iron" {
		t.Fatalf("unexpected club: %+v", club)
	}

	if _, err := service.AddClub(ctx, AddClubInput{BagID: 1, Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank club name, got %v", err)
	}

	bag, err := service.GetBag(ctx, 1)
	if err != nil {
		t.Fatalf("get bag: %v", err)
	}
	if len(bag.Clubs) != 1 {
		t.Fatalf("expected one club, got %+v", bag.Clubs)
	}
}
