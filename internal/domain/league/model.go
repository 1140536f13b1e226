package league

import (
	"fmt"
	"time"
)

// League is a scoring pool that fantasy teams compete in.
type League struct {
	ID          string
	Name        string
	Code        string
	OwnerUserID string
	IsPublic    bool
	MaxMembers  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if l.OwnerUserID == "" {
		return fmt.Errorf("league owner user id is required")
	}
	if l.MaxMembers <= 0 {
		return fmt.Errorf("league max members must be greater than zero")
	}

	return nil
}

// Membership ties one fantasy team into a league.
type Membership struct {
	LeagueID  string
	TeamID    string
	JoinedAt  time.Time
	CreatedAt time.Time
}
