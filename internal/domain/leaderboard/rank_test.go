package leaderboard

import "testing"

func TestRankCompetitionRanking(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "t3", Points: 80},
		{TeamID: "t1", Points: 100},
		{TeamID: "t2", Points: 100},
		{TeamID: "t4", Points: 60},
	}

	ranked := Rank(rows)

	want := []struct {
		teamID string
		rank   int
	}{
		{"t1", 1},
		{"t2", 1},
		{"t3", 3},
		{"t4", 4},
	}

	if len(ranked) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(ranked))
	}
	for i, w := range want {
		if ranked[i].TeamID != w.teamID || ranked[i].Rank != w.rank {
			t.Fatalf("row %d: got team=%s rank=%d want team=%s rank=%d",
				i, ranked[i].TeamID, ranked[i].Rank, w.teamID, w.rank)
		}
	}
}

func TestRankSkipsAfterTieBlock(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "a", Points: 50},
		{TeamID: "b", Points: 50},
		{TeamID: "c", Points: 50},
		{TeamID: "d", Points: 40},
	}

	ranked := Rank(rows)
	if ranked[3].Rank != 4 {
		t.Fatalf("after three-way tie the next rank must be 4, got %d", ranked[3].Rank)
	}
}

func TestRankTieOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "zebra", Points: 10},
		{TeamID: "alpha", Points: 10},
	}

	ranked := Rank(rows)
	if ranked[0].TeamID != "alpha" || ranked[1].TeamID != "zebra" {
		t.Fatalf("tied rows must order by team id: %+v", ranked)
	}
	if ranked[0].Rank != 1 || ranked[1].Rank != 1 {
		t.Fatalf("tied rows must share rank 1: %+v", ranked)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "b", Points: 1},
		{TeamID: "a", Points: 2},
	}

	_ = Rank(rows)
	if rows[0].TeamID != "b" || rows[0].Rank != 0 {
		t.Fatalf("input slice was mutated: %+v", rows)
	}
}

func TestRankEmpty(t *testing.T) {
	t.Parallel()

	if got := Rank(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
