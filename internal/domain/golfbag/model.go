package golfbag

import (
	"fmt"
	"unicode/utf8"
)

// Length limits count characters, matching VARCHAR and the form maxlength.
const (
	MaxPlayerLength   = 100
	MaxCapacity       = 100
	MaxClubNameLength = 60
)

// Bag is a golf bag owned by a single player.
type Bag struct {
	ID       int64
	Player   string
	Capacity int
	// Clubs is populated only by reads that ask for it.
	Clubs []Club
}

// Club is stored in exactly one bag.
type Club struct {
	ID    int64
	BagID int64
	Name  string
}

func ValidatePlayer(player string) error {
	if player == "" {
		return fmt.Errorf("player is required")
	}
	if utf8.RuneCountInString(player) > MaxPlayerLength {
		return fmt.Errorf("player must be at most %d characters", MaxPlayerLength)
	}
	return nil
}

func ValidateCapacity(capacity int) error {
	if capacity < 0 || capacity > MaxCapacity {
		return fmt.Errorf("capacity must be between 0 and %d", MaxCapacity)
	}
	return nil
}

func ValidateClubName(name string) error {
	if name == "" {
		return fmt.Errorf("club name is required")
	}
	if utf8.RuneCountInString(name) > MaxClubNameLength {
		return fmt.Errorf("club name must be at most %d characters", MaxClubNameLength)
	}
	return nil
}
