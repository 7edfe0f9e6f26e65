package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
)

func TestGolfBagRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewGolfBagRepository(nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, golfbag.Bag{Player: "Joe", Capacity: 10})
	if err != nil {
		t.Fatalf("create first bag: %v", err)
	}
	second, err := repo.Create(ctx, golfbag.Bag{Player: "Jim", Capacity: 8})
	if err != nil {
		t.Fatalf("create second bag: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("unexpected ids: first=%d second=%d", first.ID, second.ID)
	}

	bags, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list bags: %v", err)
	}
	if len(bags) != 2 || bags[0].Player != "Joe" || bags[1].Player != "Jim" {
		t.Fatalf("unexpected bags: %+v", bags)
	}
}

func TestGolfBagRepository_GetByIDLoadsClubsOnlyWhenAsked(t *testing.T) {
	repo := NewGolfBagRepository([]golfbag.Bag{
		{Player: "Joe", Capacity: 10, Clubs: []golfbag.Club{{Name: "Driver"}, {Name: "Putter"}}},
	})
	ctx := context.Background()

	plain, exists, err := repo.GetByID(ctx, 1)
	if err != nil || !exists {
		t.Fatalf("get bag: exists=%v err=%v", exists, err)
	}
	if plain.Clubs != nil {
		t.Fatalf("expected clubs to be left unloaded, got %+v", plain.Clubs)
	}

	detailed, exists, err := repo.GetByID(ctx, 1, golfbag.WithClubs())
	if err != nil || !exists {
		t.Fatalf("get bag with clubs: exists=%v err=%v", exists, err)
	}
	if len(detailed.Clubs) != 2 || detailed.Clubs[0].BagID != 1 {
		t.Fatalf("unexpected clubs: %+v", detailed.Clubs)
	}

	detailed.Clubs[0].Name = "mutated"
	again, _, _ := repo.GetByID(ctx, 1, golfbag.WithClubs())
	if again.Clubs[0].Name != "Driver" {
		t.Fatalf("expected repository to return copies, got %q", again.Clubs[0].Name)
	}
}

func TestGolfBagRepository_MissingRecords(t *testing.T) {
	repo := NewGolfBagRepository(nil)
	ctx := context.Background()

	if _, exists, err := repo.GetByID(ctx, 42); err != nil || exists {
		t.Fatalf("expected missing bag, exists=%v err=%v", exists, err)
	}
	if updated, err := repo.Update(ctx, golfbag.Bag{ID: 42, Player: "Joe"}); err != nil || updated {
		t.Fatalf("expected update miss, updated=%v err=%v", updated, err)
	}
	if deleted, err := repo.Delete(ctx, 42); err != nil || deleted {
		t.Fatalf("expected delete miss, deleted=%v err=%v", deleted, err)
	}
	if _, exists, err := repo.AddClub(ctx, golfbag.Club{BagID: 42, Name: "Driver"}); err != nil || exists {
		t.Fatalf("expected add club miss, exists=%v err=%v", exists, err)
	}
}

func TestGolfBagRepository_DeleteDropsClubs(t *testing.T) {
	repo := NewGolfBagRepository([]golfbag.Bag{
		{Player: "Joe", Clubs: []golfbag.Club{{Name: "Driver"}}},
	})
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, 1)
	if err != nil || !deleted {
		t.Fatalf("delete bag: deleted=%v err=%v", deleted, err)
	}

	created, err := repo.Create(ctx, golfbag.Bag{Player: "Jim"})
	if err != nil {
		t.Fatalf("create bag: %v", err)
	}
	if created.ID != 2 {
		t.Fatalf("expected ids to never be reused, got %d", created.ID)
	}

	if len(repo.clubs[1]) != 0 {
		t.Fatalf("expected clubs of deleted bag to be removed")
	}
}
