package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
)

// GolfBagRepository keeps bags and clubs in process memory. IDs are handed
// out from per-table counters the same way an identity column would.
type GolfBagRepository struct {
	mu         sync.RWMutex
	bags       map[int64]golfbag.Bag
	clubs      map[int64][]golfbag.Club
	nextBagID  int64
	nextClubID int64
}

func NewGolfBagRepository(seed []golfbag.Bag) *GolfBagRepository {
	r := &GolfBagRepository{
		bags:  make(map[int64]golfbag.Bag, len(seed)),
		clubs: make(map[int64][]golfbag.Club, len(seed)),
	}

	for _, bag := range seed {
		clubs := bag.Clubs
		bag.Clubs = nil
		created, _ := r.Create(context.Background(), bag)
		for _, club := range clubs {
			club.BagID = created.ID
			_, _, _ = r.AddClub(context.Background(), club)
		}
	}

	return r
}

func (r *GolfBagRepository) List(_ context.Context) ([]golfbag.Bag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]golfbag.Bag, 0, len(r.bags))
	for _, bag := range r.bags {
		out = append(out, bag)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *GolfBagRepository) GetByID(_ context.Context, bagID int64, opts ...golfbag.GetOption) (golfbag.Bag, bool, error) {
	options := golfbag.ApplyGetOptions(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	bag, ok := r.bags[bagID]
	if !ok {
		return golfbag.Bag{}, false, nil
	}
	if options.IncludeClubs {
		bag.Clubs = append([]golfbag.Club{}, r.clubs[bagID]...)
	}

	return bag, true, nil
}

func (r *GolfBagRepository) Create(_ context.Context, bag golfbag.Bag) (golfbag.Bag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextBagID++
	bag.ID = r.nextBagID
	bag.Clubs = nil
	r.bags[bag.ID] = bag

	return bag, nil
}

func (r *GolfBagRepository) Update(_ context.Context, bag golfbag.Bag) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bags[bag.ID]; !ok {
		return false, nil
	}
	bag.Clubs = nil
	r.bags[bag.ID] = bag

	return true, nil
}

func (r *GolfBagRepository) Delete(_ context.Context, bagID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bags[bagID]; !ok {
		return false, nil
	}
	delete(r.bags, bagID)
	delete(r.clubs, bagID)

	return true, nil
}

func (r *GolfBagRepository) AddClub(_ context.Context, club golfbag.Club) (golfbag.Club, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bags[club.BagID]; !ok {
		return golfbag.Club{}, false, nil
	}
	r.nextClubID++
	club.ID = r.nextClubID
	r.clubs[club.BagID] = append(r.clubs[club.BagID], club)

	return club, true, nil
}
