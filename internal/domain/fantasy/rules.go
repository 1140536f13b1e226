package fantasy

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

var (
	ErrInvalidRosterSize     = errors.New("invalid roster size")
	ErrExceededBudget        = errors.New("budget cap exceeded")
	ErrExceededTeamLimit     = errors.New("max players from same real team exceeded")
	ErrSlotQuotaMismatch     = errors.New("slot role quota not satisfied")
	ErrUnknownSlotRole       = errors.New("unknown slot role")
	ErrSlotRoleIncompatible  = errors.New("player role cannot fill slot")
	ErrDuplicatePlayerInTeam = errors.New("duplicate player in team")
	ErrCaptainNotInTeam      = errors.New("captain does not occupy a slot")
	ErrViceCaptainNotInTeam  = errors.New("vice-captain does not occupy a slot")
	ErrCaptainEqualsVice     = errors.New("captain and vice-captain must differ")
	ErrInvalidTeamState      = errors.New("invalid team state")
)

// Rules stores fantasy roster validation parameters.
type Rules struct {
	TeamSize          int
	BudgetCap         int64
	MaxPlayersPerTeam int
	SlotQuota         map[SlotRole]int
}

func DefaultRules() Rules {
	return Rules{
		TeamSize:          11,
		BudgetCap:         1000,
		MaxPlayersPerTeam: 3,
		SlotQuota: map[SlotRole]int{
			SlotBatting: 3,
			SlotKeeper:  1,
			SlotBowling: 3,
			SlotFlex:    4,
		},
	}
}

// slotAccepts reports whether a player role may fill a slot role.
// Flex slots take any role; fixed slots take their discipline, with
// all-rounders eligible for batting and bowling slots.
func slotAccepts(slot SlotRole, role player.Role) bool {
	switch slot {
	case SlotFlex:
		return true
	case SlotKeeper:
		return role == player.RoleKeeper
	case SlotBatting:
		return role == player.RoleBatter || role == player.RoleAllRounder
	case SlotBowling:
		return role == player.RoleBowler || role == player.RoleAllRounder
	default:
		return false
	}
}

// ValidateTeam enforces every construction-time roster invariant: exact
// slot shape, no duplicate players, per-real-team limit, budget cap, and
// captain/vice-captain nomination.
func ValidateTeam(team Team, rules Rules) error {
	if len(team.Slots) != rules.TeamSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidRosterSize, rules.TeamSize, len(team.Slots))
	}

	realTeamCounter := make(map[string]int)
	slotCounter := make(map[SlotRole]int)
	playerSet := make(map[string]struct{}, rules.TeamSize)
	var totalCost int64

	for _, slot := range team.Slots {
		if slot.PlayerID == "" {
			return fmt.Errorf("player id is required")
		}
		if _, exists := playerSet[slot.PlayerID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayerInTeam, slot.PlayerID)
		}
		playerSet[slot.PlayerID] = struct{}{}

		if _, ok := AllSlotRoles[slot.Role]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSlotRole, slot.Role)
		}
		if _, ok := player.AllRoles[slot.PlayerRole]; !ok {
			return fmt.Errorf("unknown player role: %s", slot.PlayerRole)
		}
		if !slotAccepts(slot.Role, slot.PlayerRole) {
			return fmt.Errorf("%w: slot=%s player=%s role=%s", ErrSlotRoleIncompatible, slot.Role, slot.PlayerID, slot.PlayerRole)
		}
		if slot.RealTeamID == "" {
			return fmt.Errorf("real team id is required for player %s", slot.PlayerID)
		}
		if slot.Cost <= 0 {
			return fmt.Errorf("player cost must be greater than zero: %s", slot.PlayerID)
		}

		realTeamCounter[slot.RealTeamID]++
		if realTeamCounter[slot.RealTeamID] > rules.MaxPlayersPerTeam {
			return fmt.Errorf("%w: real_team=%s max=%d", ErrExceededTeamLimit, slot.RealTeamID, rules.MaxPlayersPerTeam)
		}

		slotCounter[slot.Role]++
		totalCost += slot.Cost
	}

	if totalCost > rules.BudgetCap {
		return fmt.Errorf("%w: cap=%d used=%d", ErrExceededBudget, rules.BudgetCap, totalCost)
	}

	for role, quota := range rules.SlotQuota {
		if slotCounter[role] != quota {
			return fmt.Errorf("%w: slot=%s want=%d got=%d", ErrSlotQuotaMismatch, role, quota, slotCounter[role])
		}
	}

	return validateCaptaincy(team, playerSet)
}

func validateCaptaincy(team Team, playerSet map[string]struct{}) error {
	if team.CaptainID == "" {
		return fmt.Errorf("%w: captain id is required", ErrCaptainNotInTeam)
	}
	if team.ViceCaptainID == "" {
		return fmt.Errorf("%w: vice-captain id is required", ErrViceCaptainNotInTeam)
	}
	if team.CaptainID == team.ViceCaptainID {
		return fmt.Errorf("%w: %s", ErrCaptainEqualsVice, team.CaptainID)
	}
	if _, ok := playerSet[team.CaptainID]; !ok {
		return fmt.Errorf("%w: %s", ErrCaptainNotInTeam, team.CaptainID)
	}
	if _, ok := playerSet[team.ViceCaptainID]; !ok {
		return fmt.Errorf("%w: %s", ErrViceCaptainNotInTeam, team.ViceCaptainID)
	}

	return nil
}
