package memory

import "github.com/riskibarqy/caddyshack/internal/domain/golfbag"

// SeedGolfBags returns demo data for local runs of the memory store.
func SeedGolfBags() []golfbag.Bag {
	return []golfbag.Bag{
		{
			Player:   "Carl Spackler",
			Capacity: 14,
			Clubs: []golfbag.Club{
				{Name: "Driver"},
				{Name: "3 Wood"},
				{Name: "Pitching Wedge"},
				{Name: "Putter"},
			},
		},
		{
			Player:   "Ty Webb",
			Capacity: 12,
			Clubs: []golfbag.Club{
				{Name: "Driver"},
				{Name: "7 Iron"},
			},
		},
		{
			Player:   "Al Czervik",
			Capacity: 20,
		},
	}
}
