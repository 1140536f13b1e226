package fantasy

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

// SlotRole is the fixed role a roster slot plays in the 11-slot shape.
type SlotRole string

const (
	SlotBatting SlotRole = "BAT"
	SlotKeeper  SlotRole = "WK"
	SlotBowling SlotRole = "BOWL"
	SlotFlex    SlotRole = "FLEX"
)

var AllSlotRoles = map[SlotRole]struct{}{
	SlotBatting: {},
	SlotKeeper:  {},
	SlotBowling: {},
	SlotFlex:    {},
}

// Slot binds one roster position to exactly one real player.
type Slot struct {
	Role       SlotRole
	PlayerID   string
	PlayerRole player.Role
	RealTeamID string
	Cost       int64
}

// Team is one user's fantasy roster, with captain and vice-captain
// nominated among its slots.
type Team struct {
	ID            string
	UserID        string
	Name          string
	Slots         []Slot
	CaptainID     string
	ViceCaptainID string
	BudgetCap     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Team) ValidateBasic() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.BudgetCap <= 0 {
		return fmt.Errorf("budget cap must be greater than zero")
	}
	if len(t.Slots) == 0 {
		return fmt.Errorf("team slots are required")
	}

	return nil
}

// HasPlayer reports whether the player occupies any slot of the team.
func (t Team) HasPlayer(playerID string) bool {
	for _, slot := range t.Slots {
		if slot.PlayerID == playerID {
			return true
		}
	}
	return false
}
