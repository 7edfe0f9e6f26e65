package golfbag

import "context"

// Repository describes golf bag persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Bag, error)
	GetByID(ctx context.Context, bagID int64, opts ...GetOption) (Bag, bool, error)
	Create(ctx context.Context, bag Bag) (Bag, error)
	Update(ctx context.Context, bag Bag) (bool, error)
	Delete(ctx context.Context, bagID int64) (bool, error)
	AddClub(ctx context.Context, club Club) (Club, bool, error)
}

// GetOptions controls which relations GetByID loads.
type GetOptions struct {
	IncludeClubs bool
}

type GetOption func(*GetOptions)

// WithClubs eagerly loads the bag's clubs.
func WithClubs() GetOption {
	return func(o *GetOptions) {
		o.IncludeClubs = true
	}
}

func ApplyGetOptions(opts ...GetOption) GetOptions {
	var out GetOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}
