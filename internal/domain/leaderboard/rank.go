package leaderboard

import "sort"

// Rank orders rows by points descending and assigns competition ranks:
// equal totals share a rank, and the next distinct total gets a rank of
// one more than the number of teams strictly ahead of it. Ties keep a
// deterministic order by team id ascending. The input slice is not
// modified.
func Rank(rows []Row) []Row {
	ranked := make([]Row, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].TeamID < ranked[j].TeamID
	})

	for i := range ranked {
		if i > 0 && ranked[i].Points == ranked[i-1].Points {
			ranked[i].Rank = ranked[i-1].Rank
			continue
		}
		ranked[i].Rank = i + 1
	}

	return ranked
}
