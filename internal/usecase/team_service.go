package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
)

// TeamService owns fantasy roster construction and per-gameweek
// score computation for a single team.
type TeamService struct {
	teamRepo   fantasy.Repository
	playerRepo player.Repository
	statsRepo  stats.Repository
	rules      fantasy.Rules
	idGen      id.Generator
	now        func() time.Time
}

func NewTeamService(
	teamRepo fantasy.Repository,
	playerRepo player.Repository,
	statsRepo stats.Repository,
	idGen id.Generator,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		rules:      fantasy.DefaultRules(),
		idGen:      idGen,
		now:        time.Now,
	}
}

// CreateTeamInput carries the client's chosen roster. Player role, real
// team, and cost are resolved server-side from the player catalog.
type CreateTeamInput struct {
	UserID        string
	Name          string
	Slots         []CreateTeamSlot
	CaptainID     string
	ViceCaptainID string
}

type CreateTeamSlot struct {
	Role     fantasy.SlotRole
	PlayerID string
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	if input.UserID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	slots := make([]fantasy.Slot, 0, len(input.Slots))
	for _, in := range input.Slots {
		p, exists, err := s.playerRepo.GetByID(ctx, in.PlayerID)
		if err != nil {
			return fantasy.Team{}, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return fantasy.Team{}, fmt.Errorf("%w: player=%s", ErrNotFound, in.PlayerID)
		}
		if !p.IsActive {
			return fantasy.Team{}, fmt.Errorf("%w: player %s is not active", ErrInvalidInput, in.PlayerID)
		}
		slots = append(slots, fantasy.Slot{
			Role:       in.Role,
			PlayerID:   p.ID,
			PlayerRole: p.Role,
			RealTeamID: p.RealTeamID,
			Cost:       p.Cost,
		})
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	team := fantasy.Team{
		ID:            teamID,
		UserID:        input.UserID,
		Name:          input.Name,
		Slots:         slots,
		CaptainID:     strings.TrimSpace(input.CaptainID),
		ViceCaptainID: strings.TrimSpace(input.ViceCaptainID),
		BudgetCap:     s.rules.BudgetCap,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := team.ValidateBasic(); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := fantasy.ValidateTeam(team, s.rules); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Upsert(ctx, team); err != nil {
		return fantasy.Team{}, fmt.Errorf("store team: %w", err)
	}

	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fantasy.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return team, nil
}

func (s *TeamService) ListUserTeams(ctx context.Context, userID string) ([]fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListUserTeams")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user teams: %w", err)
	}

	return teams, nil
}

// GetTeamGameweekScore computes the team's score for one gameweek from
// the stats recorded so far. Nothing is persisted here; settlement into
// leaderboards is the recalc service's job.
func (s *TeamService) GetTeamGameweekScore(ctx context.Context, teamID string, gw int) (fantasy.GameweekScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamGameweekScore")
	defer span.End()

	if gw <= 0 {
		return fantasy.GameweekScore{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return fantasy.GameweekScore{}, err
	}

	points, err := s.statsRepo.TotalPointsByGameweek(ctx, gw)
	if err != nil {
		return fantasy.GameweekScore{}, fmt.Errorf("load gameweek points: %w", err)
	}

	score, err := fantasy.ComputeGameweekScore(team, points)
	if err != nil {
		return fantasy.GameweekScore{}, fmt.Errorf("compute gameweek score: %w", err)
	}

	return score, nil
}
