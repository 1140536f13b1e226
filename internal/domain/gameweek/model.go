package gameweek

import (
	"fmt"
	"time"
)

// Gameweek is one scoring round of the season.
type Gameweek struct {
	Number      int
	Name        string
	StartsAt    time.Time
	EndsAt      time.Time
	IsActive    bool
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (g Gameweek) Validate() error {
	if g.Number <= 0 {
		return fmt.Errorf("gameweek number must be greater than zero")
	}
	if g.Name == "" {
		return fmt.Errorf("gameweek name is required")
	}
	if g.StartsAt.IsZero() || g.EndsAt.IsZero() {
		return fmt.Errorf("gameweek start and end times are required")
	}
	if !g.EndsAt.After(g.StartsAt) {
		return fmt.Errorf("gameweek end must be after start")
	}

	return nil
}
