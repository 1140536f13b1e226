package stats

import (
	"errors"
	"fmt"
	"time"
)

var ErrNegativeCounter = errors.New("stat counter must not be negative")

// PlayerMatchStat is one player's raw counters for one gameweek fixture.
// A re-submission for the same (player, gameweek) pair supersedes the
// previous row; derived points are recomputed on every upsert.
type PlayerMatchStat struct {
	PlayerID    string
	Gameweek    int
	FixtureID   string
	RunsScored  int
	Fours       int
	Sixes       int
	IsDuck      bool
	Wickets     int
	MaidenOvers int
	DotBalls    int
	Catches     int
	Stumpings   int
	RunOuts     int
	RecordedAt  time.Time
}

// PointBreakdown is derived from a stat row, never stored without it.
type PointBreakdown struct {
	BattingPoints  int
	BowlingPoints  int
	FieldingPoints int
	TotalPoints    int
}

func (s PlayerMatchStat) Validate() error {
	if s.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if s.Gameweek <= 0 {
		return fmt.Errorf("gameweek must be greater than zero")
	}
	if s.FixtureID == "" {
		return fmt.Errorf("fixture id is required")
	}

	counters := []struct {
		name  string
		value int
	}{
		{"runs_scored", s.RunsScored},
		{"fours", s.Fours},
		{"sixes", s.Sixes},
		{"wickets", s.Wickets},
		{"maiden_overs", s.MaidenOvers},
		{"dot_balls", s.DotBalls},
		{"catches", s.Catches},
		{"stumpings", s.Stumpings},
		{"run_outs", s.RunOuts},
	}
	for _, counter := range counters {
		if counter.value < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeCounter, counter.name, counter.value)
		}
	}

	return nil
}
