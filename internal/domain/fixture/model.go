package fixture

import (
	"fmt"
	"time"
)

// Status is a fixture's lifecycle state.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

var AllStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusLive:      {},
	StatusCompleted: {},
	StatusAbandoned: {},
}

// Fixture is a real-world match inside a gameweek.
type Fixture struct {
	ID         string
	Gameweek   int
	HomeTeamID string
	AwayTeamID string
	VenueName  string
	StartsAt   time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (f Fixture) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fixture id is required")
	}
	if f.Gameweek <= 0 {
		return fmt.Errorf("fixture gameweek must be greater than zero")
	}
	if f.HomeTeamID == "" || f.AwayTeamID == "" {
		return fmt.Errorf("fixture home and away team ids are required")
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("fixture teams must differ")
	}
	if _, ok := AllStatuses[f.Status]; !ok {
		return fmt.Errorf("unknown fixture status: %s", f.Status)
	}

	return nil
}
