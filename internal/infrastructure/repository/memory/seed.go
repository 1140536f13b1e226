package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

const (
	LeagueIDGlobalClassic = "global-classic-2026"
	LeagueIDOfficeAshes   = "office-ashes-2026"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDGlobalClassic,
			Name:        "Global Classic",
			Code:        "GLOBAL1",
			OwnerUserID: "system",
			IsPublic:    true,
			MaxMembers:  10000,
		},
		{
			ID:          LeagueIDOfficeAshes,
			Name:        "Office Ashes",
			Code:        "ASHES26",
			OwnerUserID: "user-demo",
			IsPublic:    false,
			MaxMembers:  20,
		},
	}
}

func SeedGameweeks() []gameweek.Gameweek {
	start := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	out := make([]gameweek.Gameweek, 0, 4)
	for i := 0; i < 4; i++ {
		gw := gameweek.Gameweek{
			Number:   i + 1,
			Name:     fmt.Sprintf("Gameweek %d", i+1),
			StartsAt: start.AddDate(0, 0, 7*i),
			EndsAt:   start.AddDate(0, 0, 7*i+6),
		}
		if i == 0 {
			gw.IsActive = true
		}
		out = append(out, gw)
	}
	return out
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ind-bat-01", Name: "Ruturaj Sharma", RealTeamID: "rt-mumbai", Role: player.RoleBatter, Cost: 95, IsActive: true},
		{ID: "ind-bat-02", Name: "Devdutt Kishan", RealTeamID: "rt-chennai", Role: player.RoleBatter, Cost: 92, IsActive: true},
		{ID: "ind-bat-03", Name: "Sai Gaikwad", RealTeamID: "rt-bangalore", Role: player.RoleBatter, Cost: 88, IsActive: true},
		{ID: "ind-bat-04", Name: "Abhishek Rana", RealTeamID: "rt-delhi", Role: player.RoleBatter, Cost: 80, IsActive: true},
		{ID: "ind-wk-01", Name: "Ishan Samson", RealTeamID: "rt-kolkata", Role: player.RoleKeeper, Cost: 90, IsActive: true},
		{ID: "ind-wk-02", Name: "Jitesh Bharat", RealTeamID: "rt-punjab", Role: player.RoleKeeper, Cost: 76, IsActive: true},
		{ID: "ind-bowl-01", Name: "Arshdeep Chahar", RealTeamID: "rt-mumbai", Role: player.RoleBowler, Cost: 94, IsActive: true},
		{ID: "ind-bowl-02", Name: "Khaleel Mavi", RealTeamID: "rt-chennai", Role: player.RoleBowler, Cost: 86, IsActive: true},
		{ID: "ind-bowl-03", Name: "Umran Nagarkoti", RealTeamID: "rt-hyderabad", Role: player.RoleBowler, Cost: 84, IsActive: true},
		{ID: "ind-bowl-04", Name: "Tushar Sakariya", RealTeamID: "rt-rajasthan", Role: player.RoleBowler, Cost: 78, IsActive: true},
		{ID: "ind-ar-01", Name: "Shivam Thakur", RealTeamID: "rt-delhi", Role: player.RoleAllRounder, Cost: 99, IsActive: true},
		{ID: "ind-ar-02", Name: "Washington Axar", RealTeamID: "rt-gujarat", Role: player.RoleAllRounder, Cost: 96, IsActive: true},
		{ID: "ind-ar-03", Name: "Venkatesh Hooda", RealTeamID: "rt-kolkata", Role: player.RoleAllRounder, Cost: 89, IsActive: true},
		{ID: "ind-bat-05", Name: "Rinku Parag", RealTeamID: "rt-hyderabad", Role: player.RoleBatter, Cost: 74, IsActive: true},
		{ID: "ind-bowl-05", Name: "Mukesh Bishnoi", RealTeamID: "rt-lucknow", Role: player.RoleBowler, Cost: 70, IsActive: false},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:         "fx-001",
			Gameweek:   1,
			HomeTeamID: "rt-mumbai",
			AwayTeamID: "rt-chennai",
			VenueName:  "Wankhede Stadium",
			StartsAt:   time.Date(2026, 3, 7, 14, 0, 0, 0, time.UTC),
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "fx-002",
			Gameweek:   1,
			HomeTeamID: "rt-kolkata",
			AwayTeamID: "rt-delhi",
			VenueName:  "Eden Gardens",
			StartsAt:   time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC),
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "fx-003",
			Gameweek:   2,
			HomeTeamID: "rt-bangalore",
			AwayTeamID: "rt-hyderabad",
			VenueName:  "Chinnaswamy Stadium",
			StartsAt:   time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC),
			Status:     fixture.StatusScheduled,
		},
	}
}
