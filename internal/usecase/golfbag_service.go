package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type CreateBagInput struct {
	Player   string
	Capacity int
}

type UpdateBagInput struct {
	BagID    int64
	Player   string
	Capacity int
}

type AddClubInput struct {
	BagID int64
	Name  string
}

type GolfBagService struct {
	bagRepo golfbag.Repository
	logger  *logging.Logger
}

func NewGolfBagService(bagRepo golfbag.Repository, logger *logging.Logger) *GolfBagService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GolfBagService{
		bagRepo: bagRepo,
		logger:  logger,
	}
}

func (s *GolfBagService) ListBags(ctx context.Context) ([]golfbag.Bag, error) {
	ctx, span := startBagSpan(ctx, "ListBags", 0)
	defer span.End()

	bags, err := s.bagRepo.List(ctx)
	if err != nil {
		return nil, storeFailure(ctx, "list golf bags", err)
	}

	return bags, nil
}

// GetBag loads a bag together with its clubs.
func (s *GolfBagService) GetBag(ctx context.Context, bagID int64) (golfbag.Bag, error) {
	ctx, span := startBagSpan(ctx, "GetBag", bagID)
	defer span.End()

	return s.getBag(ctx, bagID, golfbag.WithClubs())
}

// GetBagForEdit loads a bag without touching its clubs.
func (s *GolfBagService) GetBagForEdit(ctx context.Context, bagID int64) (golfbag.Bag, error) {
	ctx, span := startBagSpan(ctx, "GetBagForEdit", bagID)
	defer span.End()

	return s.getBag(ctx, bagID)
}

func (s *GolfBagService) CreateBag(ctx context.Context, input CreateBagInput) (golfbag.Bag, error) {
	ctx, span := startBagSpan(ctx, "CreateBag", 0)
	defer span.End()

	input.Player = strings.TrimSpace(input.Player)
	if err := validateBagFields(input.Player, input.Capacity); err != nil {
		return golfbag.Bag{}, err
	}

	created, err := s.bagRepo.Create(ctx, golfbag.Bag{
		Player:   input.Player,
		Capacity: input.Capacity,
	})
	if err != nil {
		return golfbag.Bag{}, storeFailure(ctx, "create golf bag", err)
	}

	span.SetAttributes(attribute.Int64("golfbag.id", created.ID))
	s.logger.InfoContext(ctx, "golf bag created", "bag_id", created.ID, "player", created.Player)
	return created, nil
}

func (s *GolfBagService) UpdateBag(ctx context.Context, input UpdateBagInput) (golfbag.Bag, error) {
	ctx, span := startBagSpan(ctx, "UpdateBag", input.BagID)
	defer span.End()

	if input.BagID <= 0 {
		return golfbag.Bag{}, fmt.Errorf("%w: golf bag=%d", ErrNotFound, input.BagID)
	}
	input.Player = strings.TrimSpace(input.Player)
	if err := validateBagFields(input.Player, input.Capacity); err != nil {
		return golfbag.Bag{}, err
	}

	bag := golfbag.Bag{
		ID:       input.BagID,
		Player:   input.Player,
		Capacity: input.Capacity,
	}
	updated, err := s.bagRepo.Update(ctx, bag)
	if err != nil {
		return golfbag.Bag{}, storeFailure(ctx, "update golf bag", err)
	}
	if !updated {
		return golfbag.Bag{}, fmt.Errorf("%w: golf bag=%d", ErrNotFound, input.BagID)
	}

	return bag, nil
}

func (s *GolfBagService) DeleteBag(ctx context.Context, bagID int64) error {
	ctx, span := startBagSpan(ctx, "DeleteBag", bagID)
	defer span.End()

	if _, err := s.getBag(ctx, bagID); err != nil {
		return err
	}

	deleted, err := s.bagRepo.Delete(ctx, bagID)
	if err != nil {
		return storeFailure(ctx, "delete golf bag", err)
	}
	// Removed by a concurrent request between the read and the delete.
	if !deleted {
		return fmt.Errorf("%w: golf bag=%d", ErrNotFound, bagID)
	}

	s.logger.InfoContext(ctx, "golf bag deleted", "bag_id", bagID)
	return nil
}

func (s *GolfBagService) AddClub(ctx context.Context, input AddClubInput) (golfbag.Club, error) {
	ctx, span := startBagSpan(ctx, "AddClub", input.BagID)
	defer span.End()

	if input.BagID <= 0 {
		return golfbag.Club{}, fmt.Errorf("%w: golf bag=%d", ErrNotFound, input.BagID)
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := golfbag.ValidateClubName(input.Name); err != nil {
		verr := NewValidationError()
		verr.Add("Name", err.Error())
		return golfbag.Club{}, verr
	}

	club, exists, err := s.bagRepo.AddClub(ctx, golfbag.Club{BagID: input.BagID, Name: input.Name})
	if err != nil {
		return golfbag.Club{}, storeFailure(ctx, "add club to golf bag", err)
	}
	if !exists {
		return golfbag.Club{}, fmt.Errorf("%w: golf bag=%d", ErrNotFound, input.BagID)
	}

	return club, nil
}

func (s *GolfBagService) getBag(ctx context.Context, bagID int64, opts ...golfbag.GetOption) (golfbag.Bag, error) {
	if bagID <= 0 {
		return golfbag.Bag{}, fmt.Errorf("%w: golf bag=%d", ErrNotFound, bagID)
	}

	bag, exists, err := s.bagRepo.GetByID(ctx, bagID, opts...)
	if err != nil {
		return golfbag.Bag{}, storeFailure(ctx, "get golf bag", err)
	}
	if !exists {
		return golfbag.Bag{}, fmt.Errorf("%w: golf bag=%d", ErrNotFound, bagID)
	}

	return bag, nil
}

func validateBagFields(player string, capacity int) error {
	verr := NewValidationError()
	if err := golfbag.ValidatePlayer(player); err != nil {
		verr.Add("Player", err.Error())
	}
	if err := golfbag.ValidateCapacity(capacity); err != nil {
		verr.Add("Capacity", err.Error())
	}
	return verr.orNil()
}
