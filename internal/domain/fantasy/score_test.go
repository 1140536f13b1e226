package fantasy

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

func scoreTeam() Team {
	return Team{
		ID:     "team-1",
		UserID: "user-1",
		Name:   "Score XI",
		Slots: []Slot{
			{Role: SlotBatting, PlayerID: "cap", PlayerRole: player.RoleBatter, RealTeamID: "rt-1", Cost: 100},
			{Role: SlotBowling, PlayerID: "vice", PlayerRole: player.RoleBowler, RealTeamID: "rt-2", Cost: 100},
			{Role: SlotFlex, PlayerID: "other", PlayerRole: player.RoleBatter, RealTeamID: "rt-3", Cost: 100},
		},
		CaptainID:     "cap",
		ViceCaptainID: "vice",
		BudgetCap:     1000,
	}
}

func TestComputeGameweekScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		points    map[string]int
		wantTotal int
	}{
		{
			name:      "captain played doubles captain only",
			points:    map[string]int{"cap": 30, "vice": 50, "other": 10},
			wantTotal: 2*30 + 50 + 10,
		},
		{
			name:      "captain absent falls back to vice",
			points:    map[string]int{"vice": 50, "other": 10},
			wantTotal: 2*50 + 10,
		},
		{
			name:      "captain and vice both absent doubles nobody",
			points:    map[string]int{"other": 10},
			wantTotal: 10,
		},
		{
			name:      "captain with zero points still counts as played",
			points:    map[string]int{"cap": 0, "vice": 50, "other": 10},
			wantTotal: 0 + 50 + 10,
		},
		{
			name:      "negative captain score is doubled too",
			points:    map[string]int{"cap": -2, "other": 10},
			wantTotal: -4 + 10,
		},
		{
			name:      "nobody played scores zero",
			points:    map[string]int{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGameweekScore(scoreTeam(), tt.points)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Total != tt.wantTotal {
				t.Fatalf("total: got=%d want=%d", got.Total, tt.wantTotal)
			}

			doubled := 0
			sum := 0
			for _, slot := range got.Slots {
				if slot.Multiplier == 2 {
					doubled++
				}
				if slot.CountedPoints != slot.BasePoints*slot.Multiplier {
					t.Fatalf("slot %s counted=%d base=%d mult=%d", slot.PlayerID, slot.CountedPoints, slot.BasePoints, slot.Multiplier)
				}
				sum += slot.CountedPoints
			}
			if doubled > 1 {
				t.Fatalf("at most one slot may be doubled, got %d", doubled)
			}
			if sum != got.Total {
				t.Fatalf("slot sum %d does not match total %d", sum, got.Total)
			}
		})
	}
}

func TestComputeGameweekScoreBreakdownFlags(t *testing.T) {
	t.Parallel()

	got, err := ComputeGameweekScore(scoreTeam(), map[string]int{"vice": 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, slot := range got.Slots {
		switch slot.PlayerID {
		case "cap":
			if !slot.IsCaptain || slot.Played || slot.Multiplier != 1 {
				t.Fatalf("captain slot flags wrong: %+v", slot)
			}
		case "vice":
			if !slot.IsViceCaptain || !slot.Played || slot.Multiplier != 2 {
				t.Fatalf("vice slot flags wrong: %+v", slot)
			}
		case "other":
			if slot.IsCaptain || slot.IsViceCaptain || slot.Played {
				t.Fatalf("other slot flags wrong: %+v", slot)
			}
		}
	}
}

func TestComputeGameweekScoreInvalidTeamState(t *testing.T) {
	t.Parallel()

	noCaptain := scoreTeam()
	noCaptain.CaptainID = "ghost"
	if _, err := ComputeGameweekScore(noCaptain, nil); !errors.Is(err, ErrInvalidTeamState) {
		t.Fatalf("expected ErrInvalidTeamState, got %v", err)
	}

	sameBoth := scoreTeam()
	sameBoth.ViceCaptainID = sameBoth.CaptainID
	if _, err := ComputeGameweekScore(sameBoth, nil); !errors.Is(err, ErrInvalidTeamState) {
		t.Fatalf("expected ErrInvalidTeamState, got %v", err)
	}
}
