package player

import "fmt"

// Role represents cricket role categories used in fantasy rules.
type Role string

const (
	RoleBatter     Role = "BAT"
	RoleKeeper     Role = "WK"
	RoleBowler     Role = "BOWL"
	RoleAllRounder Role = "AR"
)

var AllRoles = map[Role]struct{}{
	RoleBatter:     {},
	RoleKeeper:     {},
	RoleBowler:     {},
	RoleAllRounder: {},
}

// Player is a selectable athlete in the fantasy player pool.
type Player struct {
	ID         string
	Name       string
	RealTeamID string
	Role       Role
	Cost       int64
	IsActive   bool
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.RealTeamID == "" {
		return fmt.Errorf("player real team id is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if p.Cost <= 0 {
		return fmt.Errorf("player cost must be greater than zero")
	}

	return nil
}
