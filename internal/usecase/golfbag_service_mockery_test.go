package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	golfbagmock "github.com/riskibarqy/caddyshack/internal/mocks/domain/golfbag"
	"github.com/stretchr/testify/mock"
)

func TestGolfBagService_GetBag_RequestsClubsUsingMockery(t *testing.T) {
	t.Parallel()

	repo := golfbagmock.NewRepository(t)
	service := NewGolfBagService(repo, nil)

	repo.
		On("GetByID", mock.Anything, int64(7), mock.MatchedBy(func(opt golfbag.GetOption) bool {
			return golfbag.ApplyGetOptions(opt).IncludeClubs
		})).
		Return(golfbag.Bag{ID: 7, Player: "Joe", Clubs: []golfbag.Club{{ID: 1, BagID: 7, Name: "Driver"}}}, true, nil).
		Once()

	bag, err := service.GetBag(context.Background(), 7)
	if err != nil {
		t.Fatalf("get bag: %v", err)
	}
	if len(bag.Clubs) != 1 {
		t.Fatalf("unexpected clubs: %+v", bag.Clubs)
	}
}

func TestGolfBagService_CreateBag_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	repo := golfbagmock.NewRepository(t)
	service := NewGolfBagService(repo, nil)
	storeErr := errors.New("connection refused")

	repo.
		On("Create", mock.Anything, golfbag.Bag{Player: "Joe", Capacity: 10}).
		Return(golfbag.Bag{}, storeErr).
		Once()

	_, err := service.CreateBag(context.Background(), CreateBagInput{Player: "Joe", Capacity: 10})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected repository error to be wrapped, got %v", err)
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) {
		t.Fatalf("repository failure must not look like a client error: %v", err)
	}
}

func TestGolfBagService_CreateBag_InvalidSkipsRepositoryUsingMockery(t *testing.T) {
	t.Parallel()

	repo := golfbagmock.NewRepository(t)
	service := NewGolfBagService(repo, nil)

	_, err := service.CreateBag(context.Background(), CreateBagInput{Player: "", Capacity: 10})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGolfBagService_DeleteBag_ConcurrentRemovalUsingMockery(t *testing.T) {
	t.Parallel()

	repo := golfbagmock.NewRepository(t)
	service := NewGolfBagService(repo, nil)

	repo.
		On("GetByID", mock.Anything, int64(3)).
		Return(golfbag.Bag{ID: 3, Player: "Jim"}, true, nil).
		Once()
	repo.
		On("Delete", mock.Anything, int64(3)).
		Return(false, nil).
		Once()

	if err := service.DeleteBag(context.Background(), 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGolfBagService_UpdateBag_MissingUsingMockery(t *testing.T) {
	t.Parallel()

	repo := golfbagmock.NewRepository(t)
	service := NewGolfBagService(repo, nil)

	repo.
		On("Update", mock.Anything, golfbag.Bag{ID: 9, Player: "Jim", Capacity: 12}).
		Return(false, nil).
		Once()

	_, err := service.UpdateBag(context.Background(), UpdateBagInput{BagID: 9, Player: "Jim", Capacity: 12})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
