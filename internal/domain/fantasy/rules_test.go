package fantasy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

func validTeam() Team {
	slots := []Slot{
		{Role: SlotBatting, PlayerID: "bat-1", PlayerRole: player.RoleBatter, RealTeamID: "rt-1", Cost: 90},
		{Role: SlotBatting, PlayerID: "bat-2", PlayerRole: player.RoleBatter, RealTeamID: "rt-2", Cost: 90},
		{Role: SlotBatting, PlayerID: "bat-3", PlayerRole: player.RoleAllRounder, RealTeamID: "rt-3", Cost: 90},
		{Role: SlotKeeper, PlayerID: "wk-1", PlayerRole: player.RoleKeeper, RealTeamID: "rt-4", Cost: 90},
		{Role: SlotBowling, PlayerID: "bowl-1", PlayerRole: player.RoleBowler, RealTeamID: "rt-5", Cost: 90},
		{Role: SlotBowling, PlayerID: "bowl-2", PlayerRole: player.RoleBowler, RealTeamID: "rt-6", Cost: 90},
		{Role: SlotBowling, PlayerID: "bowl-3", PlayerRole: player.RoleAllRounder, RealTeamID: "rt-7", Cost: 90},
		{Role: SlotFlex, PlayerID: "flex-1", PlayerRole: player.RoleBatter, RealTeamID: "rt-8", Cost: 90},
		{Role: SlotFlex, PlayerID: "flex-2", PlayerRole: player.RoleBowler, RealTeamID: "rt-1", Cost: 90},
		{Role: SlotFlex, PlayerID: "flex-3", PlayerRole: player.RoleKeeper, RealTeamID: "rt-2", Cost: 90},
		{Role: SlotFlex, PlayerID: "flex-4", PlayerRole: player.RoleAllRounder, RealTeamID: "rt-3", Cost: 90},
	}

	return Team{
		ID:            "team-1",
		UserID:        "user-1",
		Name:          "Test XI",
		Slots:         slots,
		CaptainID:     "bat-1",
		ViceCaptainID: "bowl-1",
		BudgetCap:     1000,
	}
}

func TestValidateTeamAcceptsValidRoster(t *testing.T) {
	t.Parallel()

	if err := ValidateTeam(validTeam(), DefaultRules()); err != nil {
		t.Fatalf("expected valid team, got %v", err)
	}
}

func TestValidateTeamRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Team)
		wantErr error
	}{
		{
			name:    "wrong roster size",
			mutate:  func(tm *Team) { tm.Slots = tm.Slots[:10] },
			wantErr: ErrInvalidRosterSize,
		},
		{
			name:    "duplicate player",
			mutate:  func(tm *Team) { tm.Slots[7].PlayerID = "bat-1" },
			wantErr: ErrDuplicatePlayerInTeam,
		},
		{
			name:    "unknown slot role",
			mutate:  func(tm *Team) { tm.Slots[0].Role = SlotRole("XX") },
			wantErr: ErrUnknownSlotRole,
		},
		{
			name:    "bowler in batting slot",
			mutate:  func(tm *Team) { tm.Slots[0].PlayerRole = player.RoleBowler },
			wantErr: ErrSlotRoleIncompatible,
		},
		{
			name:    "batter in keeper slot",
			mutate:  func(tm *Team) { tm.Slots[3].PlayerRole = player.RoleBatter },
			wantErr: ErrSlotRoleIncompatible,
		},
		{
			name: "too many players from one real team",
			mutate: func(tm *Team) {
				tm.Slots[9].RealTeamID = "rt-1"
				tm.Slots[10].RealTeamID = "rt-1"
			},
			wantErr: ErrExceededTeamLimit,
		},
		{
			name:    "budget cap exceeded",
			mutate:  func(tm *Team) { tm.Slots[0].Cost = 200 },
			wantErr: ErrExceededBudget,
		},
		{
			name: "quota mismatch when batting slot becomes flex",
			mutate: func(tm *Team) {
				tm.Slots[0].Role = SlotFlex
			},
			wantErr: ErrSlotQuotaMismatch,
		},
		{
			name:    "captain outside roster",
			mutate:  func(tm *Team) { tm.CaptainID = "ghost" },
			wantErr: ErrCaptainNotInTeam,
		},
		{
			name:    "vice-captain outside roster",
			mutate:  func(tm *Team) { tm.ViceCaptainID = "ghost" },
			wantErr: ErrViceCaptainNotInTeam,
		},
		{
			name:    "captain equals vice-captain",
			mutate:  func(tm *Team) { tm.ViceCaptainID = tm.CaptainID },
			wantErr: ErrCaptainEqualsVice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := validTeam()
			tt.mutate(&team)

			err := ValidateTeam(team, DefaultRules())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateTeamBudgetAtExactCap(t *testing.T) {
	t.Parallel()

	team := validTeam()
	// 11 slots at 90 uses 990; raise one to land exactly on the cap.
	team.Slots[0].Cost = 100

	if err := ValidateTeam(team, DefaultRules()); err != nil {
		t.Fatalf("spend equal to cap must be allowed, got %v", err)
	}
}

func TestSlotAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slot SlotRole
		role player.Role
		want bool
	}{
		{SlotFlex, player.RoleBatter, true},
		{SlotFlex, player.RoleKeeper, true},
		{SlotFlex, player.RoleBowler, true},
		{SlotFlex, player.RoleAllRounder, true},
		{SlotKeeper, player.RoleKeeper, true},
		{SlotKeeper, player.RoleAllRounder, false},
		{SlotBatting, player.RoleBatter, true},
		{SlotBatting, player.RoleAllRounder, true},
		{SlotBatting, player.RoleKeeper, false},
		{SlotBowling, player.RoleBowler, true},
		{SlotBowling, player.RoleAllRounder, true},
		{SlotBowling, player.RoleBatter, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.slot, tt.role), func(t *testing.T) {
			if got := slotAccepts(tt.slot, tt.role); got != tt.want {
				t.Fatalf("slotAccepts(%s, %s)=%v want %v", tt.slot, tt.role, got, tt.want)
			}
		})
	}
}
