package stats

import (
	"errors"
	"testing"
)

func TestComputePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		stat PlayerMatchStat
		want PointBreakdown
	}{
		{
			name: "all zero stats score zero",
			stat: PlayerMatchStat{},
			want: PointBreakdown{},
		},
		{
			name: "batting only",
			stat: PlayerMatchStat{RunsScored: 45, Fours: 5, Sixes: 2},
			want: PointBreakdown{BattingPoints: 61, TotalPoints: 61},
		},
		{
			name: "five wicket haul with maidens and dots",
			stat: PlayerMatchStat{Wickets: 5, MaidenOvers: 1, DotBalls: 10},
			want: PointBreakdown{BowlingPoints: 193, TotalPoints: 193},
		},
		{
			name: "duck penalty",
			stat: PlayerMatchStat{IsDuck: true},
			want: PointBreakdown{BattingPoints: -2, TotalPoints: -2},
		},
		{
			name: "duck penalty independent of boundaries",
			stat: PlayerMatchStat{Fours: 1, Sixes: 1, IsDuck: true},
			want: PointBreakdown{BattingPoints: 3, TotalPoints: 3},
		},
		{
			name: "fielding only",
			stat: PlayerMatchStat{Catches: 2, Stumpings: 1, RunOuts: 3},
			want: PointBreakdown{FieldingPoints: 46, TotalPoints: 46},
		},
		{
			name: "all disciplines sum to total",
			stat: PlayerMatchStat{RunsScored: 30, Fours: 2, Wickets: 3, DotBalls: 4, Catches: 1},
			want: PointBreakdown{
				BattingPoints:  34,
				BowlingPoints:  101,
				FieldingPoints: 8,
				TotalPoints:    143,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.stat)
			if got != tt.want {
				t.Fatalf("unexpected breakdown: got=%+v want=%+v", got, tt.want)
			}
			if got.TotalPoints != got.BattingPoints+got.BowlingPoints+got.FieldingPoints {
				t.Fatalf("total must equal sum of parts: %+v", got)
			}
		})
	}
}

func TestHaulBonusBands(t *testing.T) {
	t.Parallel()

	wantByWickets := map[int]int{
		0: 0,
		1: 0,
		2: 0,
		3: 10,
		4: 15,
		5: 20,
		6: 20,
		9: 20,
	}

	for wickets, bonus := range wantByWickets {
		got := ComputePoints(PlayerMatchStat{Wickets: wickets})
		want := wickets*25 + bonus
		if got.BowlingPoints != want {
			t.Fatalf("wickets=%d: got=%d want=%d", wickets, got.BowlingPoints, want)
		}
	}
}

func TestPlayerMatchStatValidate(t *testing.T) {
	t.Parallel()

	valid := PlayerMatchStat{PlayerID: "p1", Gameweek: 1, FixtureID: "f1"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid stat, got %v", err)
	}

	negative := valid
	negative.Wickets = -1
	if err := negative.Validate(); !errors.Is(err, ErrNegativeCounter) {
		t.Fatalf("expected ErrNegativeCounter, got %v", err)
	}

	missingPlayer := valid
	missingPlayer.PlayerID = ""
	if err := missingPlayer.Validate(); err == nil {
		t.Fatal("expected missing player id error")
	}

	badGameweek := valid
	badGameweek.Gameweek = 0
	if err := badGameweek.Validate(); err == nil {
		t.Fatal("expected gameweek error")
	}
}
