package stats

// Point values are fixed league rules, not runtime configuration.
const (
	pointsPerRun     = 1
	pointsPerFour    = 2
	pointsPerSix     = 3
	duckPenalty      = -2
	pointsPerWicket  = 25
	pointsPerMaiden  = 8
	pointsPerDotBall = 4
	pointsPerCatch   = 8
	pointsPerStump   = 12
	pointsPerRunOut  = 6

	haulBonusFiveWickets  = 20
	haulBonusFourWickets  = 15
	haulBonusThreeWickets = 10
)

// ComputePoints converts raw counters into a point breakdown. It is pure
// and total over validated input; callers reject negative counters first.
func ComputePoints(stat PlayerMatchStat) PointBreakdown {
	batting := stat.RunsScored*pointsPerRun + stat.Fours*pointsPerFour + stat.Sixes*pointsPerSix
	if stat.IsDuck {
		batting += duckPenalty
	}

	bowling := stat.Wickets*pointsPerWicket +
		stat.MaidenOvers*pointsPerMaiden +
		stat.DotBalls*pointsPerDotBall +
		haulBonus(stat.Wickets)

	fielding := stat.Catches*pointsPerCatch +
		stat.Stumpings*pointsPerStump +
		stat.RunOuts*pointsPerRunOut

	return PointBreakdown{
		BattingPoints:  batting,
		BowlingPoints:  bowling,
		FieldingPoints: fielding,
		TotalPoints:    batting + bowling + fielding,
	}
}

// haulBonus bands are mutually exclusive; the five-wicket band caps the
// bonus, so thresholds are checked from the top down.
func haulBonus(wickets int) int {
	switch {
	case wickets >= 5:
		return haulBonusFiveWickets
	case wickets == 4:
		return haulBonusFourWickets
	case wickets == 3:
		return haulBonusThreeWickets
	default:
		return 0
	}
}
