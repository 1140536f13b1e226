package fantasy

import "fmt"

// SlotScore is one slot's contribution to a gameweek score.
type SlotScore struct {
	PlayerID      string
	Role          SlotRole
	IsCaptain     bool
	IsViceCaptain bool
	Played        bool
	BasePoints    int
	Multiplier    int
	CountedPoints int
}

// GameweekScore is a team's score for one gameweek with the per-slot
// breakdown that produced it.
type GameweekScore struct {
	Total int
	Slots []SlotScore
}

// ComputeGameweekScore applies the captain multiplier policy over the
// team's slots. "Played" means the player id is a key in pointsByPlayer;
// a present zero is a valid score and still counts as having played.
// The captain's base points are doubled when the captain played; when not,
// the vice-captain's are doubled instead, provided the vice played. At
// most one slot is ever doubled.
//
// A captain or vice-captain that does not occupy any slot is a
// construction-time invariant breach surfaced as ErrInvalidTeamState;
// it should never be reachable for a team that passed ValidateTeam.
func ComputeGameweekScore(team Team, pointsByPlayer map[string]int) (GameweekScore, error) {
	if !team.HasPlayer(team.CaptainID) {
		return GameweekScore{}, fmt.Errorf("%w: captain %s does not occupy a slot", ErrInvalidTeamState, team.CaptainID)
	}
	if !team.HasPlayer(team.ViceCaptainID) {
		return GameweekScore{}, fmt.Errorf("%w: vice-captain %s does not occupy a slot", ErrInvalidTeamState, team.ViceCaptainID)
	}
	if team.CaptainID == team.ViceCaptainID {
		return GameweekScore{}, fmt.Errorf("%w: captain and vice-captain are both %s", ErrInvalidTeamState, team.CaptainID)
	}

	_, captainPlayed := pointsByPlayer[team.CaptainID]
	_, vicePlayed := pointsByPlayer[team.ViceCaptainID]
	viceDoubles := !captainPlayed && vicePlayed

	out := GameweekScore{Slots: make([]SlotScore, 0, len(team.Slots))}
	for _, slot := range team.Slots {
		base, played := pointsByPlayer[slot.PlayerID]

		multiplier := 1
		switch {
		case slot.PlayerID == team.CaptainID && captainPlayed:
			multiplier = 2
		case slot.PlayerID == team.ViceCaptainID && viceDoubles:
			multiplier = 2
		}

		counted := base * multiplier
		out.Slots = append(out.Slots, SlotScore{
			PlayerID:      slot.PlayerID,
			Role:          slot.Role,
			IsCaptain:     slot.PlayerID == team.CaptainID,
			IsViceCaptain: slot.PlayerID == team.ViceCaptainID,
			Played:        played,
			BasePoints:    base,
			Multiplier:    multiplier,
			CountedPoints: counted,
		})
		out.Total += counted
	}

	return out, nil
}
