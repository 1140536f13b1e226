package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type playerStatRequest struct {
	PlayerID    string `json:"playerId" validate:"required"`
	Gameweek    int    `json:"gameweek" validate:"gt=0"`
	FixtureID   string `json:"fixtureId" validate:"required"`
	RunsScored  int    `json:"runsScored" validate:"gte=0"`
	Fours       int    `json:"fours" validate:"gte=0"`
	Sixes       int    `json:"sixes" validate:"gte=0"`
	IsDuck      bool   `json:"isDuck"`
	Wickets     int    `json:"wickets" validate:"gte=0"`
	MaidenOvers int    `json:"maidenOvers" validate:"gte=0"`
	DotBalls    int    `json:"dotBalls" validate:"gte=0"`
	Catches     int    `json:"catches" validate:"gte=0"`
	Stumpings   int    `json:"stumpings" validate:"gte=0"`
	RunOuts     int    `json:"runOuts" validate:"gte=0"`
}

type bulkPlayerStatsRequest struct {
	Rows []playerStatRequest `json:"rows" validate:"required,min=1,dive"`
}

type createTeamSlotRequest struct {
	Slot     string `json:"slot" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
}

type createTeamRequest struct {
	Name          string                  `json:"name" validate:"required,max=100"`
	Slots         []createTeamSlotRequest `json:"slots" validate:"required,min=1,dive"`
	CaptainID     string                  `json:"captainId" validate:"required"`
	ViceCaptainID string                  `json:"viceCaptainId" validate:"required"`
}

type createLeagueRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	IsPublic   bool   `json:"isPublic"`
	MaxMembers int    `json:"maxMembers" validate:"gte=0"`
}

type joinLeagueRequest struct {
	LeagueID string `json:"leagueId"`
	Code     string `json:"code"`
	TeamID   string `json:"teamId" validate:"required"`
}

type upsertGameweekRequest struct {
	Number   int    `json:"number" validate:"gt=0"`
	Name     string `json:"name" validate:"required,max=100"`
	StartsAt string `json:"startsAt" validate:"required"`
	EndsAt   string `json:"endsAt" validate:"required"`
	IsActive bool   `json:"isActive"`
}

type upsertFixtureRequest struct {
	ID         string `json:"id" validate:"required"`
	Gameweek   int    `json:"gameweek" validate:"gt=0"`
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required"`
	VenueName  string `json:"venueName"`
	StartsAt   string `json:"startsAt" validate:"required"`
	Status     string `json:"status"`
}

type fixtureStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type settleGameweekJobRequest struct {
	Gameweek int `json:"gameweek" validate:"gt=0"`
}

type settleLeagueJobRequest struct {
	LeagueID string `json:"leagueId" validate:"required"`
	Gameweek int    `json:"gameweek" validate:"gt=0"`
}

type scheduleSettlementJobRequest struct {
	Gameweek     int `json:"gameweek" validate:"gt=0"`
	DelaySeconds int `json:"delaySeconds" validate:"gte=0"`
}

type upsertOutcomeDTO struct {
	PlayerID string `json:"playerId"`
	Gameweek int    `json:"gameweek"`
	Inserted bool   `json:"inserted"`
}

type rowErrorDTO struct {
	Index    int    `json:"index"`
	PlayerID string `json:"playerId,omitempty"`
	Message  string `json:"message"`
}

type bulkUpsertResultDTO struct {
	Inserted int           `json:"inserted"`
	Updated  int           `json:"updated"`
	Errors   []rowErrorDTO `json:"errors,omitempty"`
}

type pointBreakdownDTO struct {
	BattingPoints  int `json:"battingPoints"`
	BowlingPoints  int `json:"bowlingPoints"`
	FieldingPoints int `json:"fieldingPoints"`
	TotalPoints    int `json:"totalPoints"`
}

type statRowDTO struct {
	PlayerID    string            `json:"playerId"`
	Gameweek    int               `json:"gameweek"`
	FixtureID   string            `json:"fixtureId"`
	RunsScored  int               `json:"runsScored"`
	Fours       int               `json:"fours"`
	Sixes       int               `json:"sixes"`
	IsDuck      bool              `json:"isDuck"`
	Wickets     int               `json:"wickets"`
	MaidenOvers int               `json:"maidenOvers"`
	DotBalls    int               `json:"dotBalls"`
	Catches     int               `json:"catches"`
	Stumpings   int               `json:"stumpings"`
	RunOuts     int               `json:"runOuts"`
	Points      pointBreakdownDTO `json:"points"`
}

type playerSummaryDTO struct {
	PlayerID      string  `json:"playerId"`
	TotalPoints   int     `json:"totalPoints"`
	MatchesPlayed int     `json:"matchesPlayed"`
	AveragePoints float64 `json:"averagePoints"`
	RecentForm    []int   `json:"recentForm"`
}

type teamSlotDTO struct {
	Slot       string `json:"slot"`
	PlayerID   string `json:"playerId"`
	PlayerRole string `json:"playerRole"`
	RealTeamID string `json:"realTeamId"`
	Cost       int64  `json:"cost"`
}

type teamDTO struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Name          string        `json:"name"`
	Slots         []teamSlotDTO `json:"slots"`
	CaptainID     string        `json:"captainId"`
	ViceCaptainID string        `json:"viceCaptainId"`
	BudgetCap     int64         `json:"budgetCap"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type slotScoreDTO struct {
	PlayerID      string `json:"playerId"`
	Slot          string `json:"slot"`
	IsCaptain     bool   `json:"isCaptain"`
	IsViceCaptain bool   `json:"isViceCaptain"`
	Played        bool   `json:"played"`
	BasePoints    int    `json:"basePoints"`
	Multiplier    int    `json:"multiplier"`
	CountedPoints int    `json:"countedPoints"`
}

type gameweekScoreDTO struct {
	TeamID   string         `json:"teamId"`
	Gameweek int            `json:"gameweek"`
	Total    int            `json:"total"`
	Slots    []slotScoreDTO `json:"slots"`
}

type leagueDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	JoinCode    string    `json:"joinCode,omitempty"`
	OwnerUserID string    `json:"ownerUserId"`
	IsPublic    bool      `json:"isPublic"`
	MaxMembers  int       `json:"maxMembers"`
	CreatedAt   time.Time `json:"createdAt"`
}

type membershipDTO struct {
	LeagueID string    `json:"leagueId"`
	TeamID   string    `json:"teamId"`
	JoinedAt time.Time `json:"joinedAt"`
}

type leaderboardRowDTO struct {
	Rank           int    `json:"rank"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	OwnerID        string `json:"ownerId"`
	Points         int    `json:"points"`
	LatestGwPoints int    `json:"latestGwPoints"`
	Gameweeks      int    `json:"gameweeks"`
}

type leaderboardPageDTO struct {
	LeagueID    string              `json:"leagueId"`
	Mode        string              `json:"mode"`
	Gameweek    int                 `json:"gameweek,omitempty"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"pageSize"`
	TotalTeams  int                 `json:"totalTeams"`
	Rows        []leaderboardRowDTO `json:"rows"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

type gameweekDTO struct {
	Number      int       `json:"number"`
	Name        string    `json:"name"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	IsActive    bool      `json:"isActive"`
	IsCompleted bool      `json:"isCompleted"`
}

type fixtureDTO struct {
	ID         string    `json:"id"`
	Gameweek   int       `json:"gameweek"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	VenueName  string    `json:"venueName,omitempty"`
	StartsAt   time.Time `json:"startsAt"`
	Status     string    `json:"status"`
}

type playerDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RealTeamID string `json:"realTeamId"`
	Role       string `json:"role"`
	Cost       int64  `json:"cost"`
	IsActive   bool   `json:"isActive"`
}

type settlementDTO struct {
	LeagueID string `json:"leagueId"`
	Gameweek int    `json:"gameweek"`
	Teams    int    `json:"teams"`
	Credited int    `json:"credited"`
	Skipped  int    `json:"skipped"`
}

func statRequestToDomain(req playerStatRequest) stats.PlayerMatchStat {
	return stats.PlayerMatchStat{
		PlayerID:    req.PlayerID,
		Gameweek:    req.Gameweek,
		FixtureID:   req.FixtureID,
		RunsScored:  req.RunsScored,
		Fours:       req.Fours,
		Sixes:       req.Sixes,
		IsDuck:      req.IsDuck,
		Wickets:     req.Wickets,
		MaidenOvers: req.MaidenOvers,
		DotBalls:    req.DotBalls,
		Catches:     req.Catches,
		Stumpings:   req.Stumpings,
		RunOuts:     req.RunOuts,
	}
}

func statRowToDTO(ctx context.Context, row stats.GameweekRow) statRowDTO {
	return statRowDTO{
		PlayerID:    row.Stat.PlayerID,
		Gameweek:    row.Stat.Gameweek,
		FixtureID:   row.Stat.FixtureID,
		RunsScored:  row.Stat.RunsScored,
		Fours:       row.Stat.Fours,
		Sixes:       row.Stat.Sixes,
		IsDuck:      row.Stat.IsDuck,
		Wickets:     row.Stat.Wickets,
		MaidenOvers: row.Stat.MaidenOvers,
		DotBalls:    row.Stat.DotBalls,
		Catches:     row.Stat.Catches,
		Stumpings:   row.Stat.Stumpings,
		RunOuts:     row.Stat.RunOuts,
		Points: pointBreakdownDTO{
			BattingPoints:  row.Breakdown.BattingPoints,
			BowlingPoints:  row.Breakdown.BowlingPoints,
			FieldingPoints: row.Breakdown.FieldingPoints,
			TotalPoints:    row.Breakdown.TotalPoints,
		},
	}
}

func bulkResultToDTO(ctx context.Context, result usecase.BulkUpsertResult) bulkUpsertResultDTO {
	out := bulkUpsertResultDTO{
		Inserted: result.Inserted,
		Updated:  result.Updated,
	}
	for _, rowErr := range result.Errors {
		out.Errors = append(out.Errors, rowErrorDTO{
			Index:    rowErr.Index,
			PlayerID: rowErr.PlayerID,
			Message:  rowErr.Message,
		})
	}
	return out
}

func summaryToDTO(ctx context.Context, summary usecase.PlayerStatsSummary) playerSummaryDTO {
	return playerSummaryDTO{
		PlayerID:      summary.PlayerID,
		TotalPoints:   summary.TotalPoints,
		MatchesPlayed: summary.MatchesPlayed,
		AveragePoints: summary.AveragePoints,
		RecentForm:    summary.RecentForm,
	}
}

func teamToDTO(ctx context.Context, t fantasy.Team) teamDTO {
	slots := make([]teamSlotDTO, 0, len(t.Slots))
	for _, slot := range t.Slots {
		slots = append(slots, teamSlotDTO{
			Slot:       string(slot.Role),
			PlayerID:   slot.PlayerID,
			PlayerRole: string(slot.PlayerRole),
			RealTeamID: slot.RealTeamID,
			Cost:       slot.Cost,
		})
	}
	return teamDTO{
		ID:            t.ID,
		UserID:        t.UserID,
		Name:          t.Name,
		Slots:         slots,
		CaptainID:     t.CaptainID,
		ViceCaptainID: t.ViceCaptainID,
		BudgetCap:     t.BudgetCap,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func scoreToDTO(ctx context.Context, teamID string, gw int, score fantasy.GameweekScore) gameweekScoreDTO {
	slots := make([]slotScoreDTO, 0, len(score.Slots))
	for _, slot := range score.Slots {
		slots = append(slots, slotScoreDTO{
			PlayerID:      slot.PlayerID,
			Slot:          string(slot.Role),
			IsCaptain:     slot.IsCaptain,
			IsViceCaptain: slot.IsViceCaptain,
			Played:        slot.Played,
			BasePoints:    slot.BasePoints,
			Multiplier:    slot.Multiplier,
			CountedPoints: slot.CountedPoints,
		})
	}
	return gameweekScoreDTO{
		TeamID:   teamID,
		Gameweek: gw,
		Total:    score.Total,
		Slots:    slots,
	}
}

// leagueToDTO includes the join code only for the league owner.
func leagueToDTO(ctx context.Context, lg league.League, requesterID string) leagueDTO {
	dto := leagueDTO{
		ID:          lg.ID,
		Name:        lg.Name,
		OwnerUserID: lg.OwnerUserID,
		IsPublic:    lg.IsPublic,
		MaxMembers:  lg.MaxMembers,
		CreatedAt:   lg.CreatedAt,
	}
	if requesterID != "" && requesterID == lg.OwnerUserID {
		dto.JoinCode = lg.Code
	}
	return dto
}

func membershipToDTO(ctx context.Context, m league.Membership) membershipDTO {
	return membershipDTO{
		LeagueID: m.LeagueID,
		TeamID:   m.TeamID,
		JoinedAt: m.JoinedAt,
	}
}

func leaderboardPageToDTO(ctx context.Context, page usecase.LeaderboardPage) leaderboardPageDTO {
	rows := make([]leaderboardRowDTO, 0, len(page.Rows))
	for _, row := range page.Rows {
		rows = append(rows, leaderboardRowToDTO(ctx, row))
	}
	return leaderboardPageDTO{
		LeagueID:    page.LeagueID,
		Mode:        string(page.Mode),
		Gameweek:    page.Gameweek,
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalTeams:  page.TotalTeams,
		Rows:        rows,
		GeneratedAt: page.GeneratedAt,
	}
}

func leaderboardRowToDTO(ctx context.Context, row leaderboard.Row) leaderboardRowDTO {
	return leaderboardRowDTO{
		Rank:           row.Rank,
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		OwnerID:        row.OwnerID,
		Points:         row.Points,
		LatestGwPoints: row.LatestGwPoints,
		Gameweeks:      row.Gameweeks,
	}
}

func gameweekToDTO(ctx context.Context, gw gameweek.Gameweek) gameweekDTO {
	return gameweekDTO{
		Number:      gw.Number,
		Name:        gw.Name,
		StartsAt:    gw.StartsAt,
		EndsAt:      gw.EndsAt,
		IsActive:    gw.IsActive,
		IsCompleted: gw.IsCompleted,
	}
}

func fixtureToDTO(ctx context.Context, fx fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         fx.ID,
		Gameweek:   fx.Gameweek,
		HomeTeamID: fx.HomeTeamID,
		AwayTeamID: fx.AwayTeamID,
		VenueName:  fx.VenueName,
		StartsAt:   fx.StartsAt,
		Status:     string(fx.Status),
	}
}

func playerToDTO(ctx context.Context, p player.Player) playerDTO {
	return playerDTO{
		ID:         p.ID,
		Name:       p.Name,
		RealTeamID: p.RealTeamID,
		Role:       string(p.Role),
		Cost:       p.Cost,
		IsActive:   p.IsActive,
	}
}

func settlementToDTO(ctx context.Context, s usecase.LeagueSettlement) settlementDTO {
	return settlementDTO{
		LeagueID: s.LeagueID,
		Gameweek: s.Gameweek,
		Teams:    s.Teams,
		Credited: s.Credited,
		Skipped:  s.Skipped,
	}
}
