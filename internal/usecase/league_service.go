package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
)

const defaultLeagueMaxMembers = 50

// LeagueService manages league lifecycle and membership.
type LeagueService struct {
	leagueRepo     league.Repository
	teamRepo       fantasy.Repository
	cumulativeRepo leaderboard.CumulativeRepository
	idGen          id.Generator
	now            func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	teamRepo fantasy.Repository,
	cumulativeRepo leaderboard.CumulativeRepository,
	idGen id.Generator,
) *LeagueService {
	return &LeagueService{
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		cumulativeRepo: cumulativeRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

type CreateLeagueInput struct {
	OwnerUserID string
	Name        string
	IsPublic    bool
	MaxMembers  int
}

func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	input.OwnerUserID = strings.TrimSpace(input.OwnerUserID)
	input.Name = strings.TrimSpace(input.Name)
	if input.OwnerUserID == "" {
		return league.League{}, fmt.Errorf("%w: owner user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return league.League{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if input.MaxMembers < 0 {
		return league.League{}, fmt.Errorf("%w: max members cannot be negative", ErrInvalidInput)
	}
	if input.MaxMembers == 0 {
		input.MaxMembers = defaultLeagueMaxMembers
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	code, err := id.NewJoinCode()
	if err != nil {
		return league.League{}, fmt.Errorf("generate join code: %w", err)
	}

	now := s.now().UTC()
	lg := league.League{
		ID:          leagueID,
		Name:        input.Name,
		Code:        code,
		OwnerUserID: input.OwnerUserID,
		IsPublic:    input.IsPublic,
		MaxMembers:  input.MaxMembers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := lg.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, lg); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	return lg, nil
}

func (s *LeagueService) ListLeagues(ctx context.Context, publicOnly bool) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	items, err := s.leagueRepo.List(ctx, publicOnly)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return items, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return lg, nil
}

type JoinLeagueInput struct {
	UserID   string
	LeagueID string
	Code     string
	TeamID   string
}

// JoinLeague enters the user's team into a league addressed either by
// id or by join code. Private leagues require the code.
func (s *LeagueService) JoinLeague(ctx context.Context, input JoinLeagueInput) (league.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinLeague")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.Code = strings.TrimSpace(input.Code)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.UserID == "" {
		return league.Membership{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return league.Membership{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	lg, err := s.resolveLeague(ctx, input.LeagueID, input.Code)
	if err != nil {
		return league.Membership{}, err
	}
	if !lg.IsPublic && input.Code == "" && lg.OwnerUserID != input.UserID {
		return league.Membership{}, fmt.Errorf("%w: private league requires a join code", ErrUnauthorized)
	}

	team, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return league.Membership{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return league.Membership{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}
	if team.UserID != input.UserID {
		return league.Membership{}, fmt.Errorf("%w: team %s does not belong to user %s", ErrUnauthorized, input.TeamID, input.UserID)
	}

	member, err := s.leagueRepo.IsMember(ctx, lg.ID, team.ID)
	if err != nil {
		return league.Membership{}, fmt.Errorf("check membership: %w", err)
	}
	if member {
		return league.Membership{}, fmt.Errorf("%w: team %s already joined league %s", ErrConflict, team.ID, lg.ID)
	}

	count, err := s.leagueRepo.CountMemberships(ctx, lg.ID)
	if err != nil {
		return league.Membership{}, fmt.Errorf("count memberships: %w", err)
	}
	if count >= lg.MaxMembers {
		return league.Membership{}, fmt.Errorf("%w: league=%s max=%d", ErrLeagueFull, lg.ID, lg.MaxMembers)
	}

	now := s.now().UTC()
	membership := league.Membership{
		LeagueID:  lg.ID,
		TeamID:    team.ID,
		JoinedAt:  now,
		CreatedAt: now,
	}
	if err := s.leagueRepo.AddMembership(ctx, membership); err != nil {
		return league.Membership{}, fmt.Errorf("add membership: %w", err)
	}

	return membership, nil
}

// LeaveLeague removes the team from the league together with its
// cumulative leaderboard entry. Per-gameweek score history is kept.
func (s *LeagueService) LeaveLeague(ctx context.Context, userID, leagueID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.LeaveLeague")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if userID == "" || leagueID == "" || teamID == "" {
		return fmt.Errorf("%w: user id, league id and team id are required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if team.UserID != userID {
		return fmt.Errorf("%w: team %s does not belong to user %s", ErrUnauthorized, teamID, userID)
	}

	member, err := s.leagueRepo.IsMember(ctx, leagueID, teamID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return fmt.Errorf("%w: team %s is not a member of league %s", ErrNotFound, teamID, leagueID)
	}

	if err := s.leagueRepo.RemoveMembership(ctx, leagueID, teamID); err != nil {
		return fmt.Errorf("remove membership: %w", err)
	}
	if err := s.cumulativeRepo.Remove(ctx, leagueID, teamID); err != nil {
		return fmt.Errorf("remove cumulative entry: %w", err)
	}

	return nil
}

func (s *LeagueService) resolveLeague(ctx context.Context, leagueID, code string) (league.League, error) {
	switch {
	case leagueID != "":
		lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
		if err != nil {
			return league.League{}, fmt.Errorf("get league: %w", err)
		}
		if !exists {
			return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
		}
		return lg, nil
	case code != "":
		lg, exists, err := s.leagueRepo.GetByCode(ctx, code)
		if err != nil {
			return league.League{}, fmt.Errorf("get league by code: %w", err)
		}
		if !exists {
			return league.League{}, fmt.Errorf("%w: league code=%s", ErrNotFound, code)
		}
		return lg, nil
	default:
		return league.League{}, fmt.Errorf("%w: league id or join code is required", ErrInvalidInput)
	}
}
