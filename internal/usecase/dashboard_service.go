package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubdeck/clubstats/internal/domain/stats"
	"github.com/clubdeck/clubstats/internal/domain/team"
)

// compactLeaderboardSize matches what the mobile my-team view renders.
const compactLeaderboardSize = 3

// MyTeamDashboard is the compact view mobile clients show on the
// my-team screen: overall record, per-category breakdown, and short
// leaderboards.
type MyTeamDashboard struct {
	Team         team.Team
	Summary      stats.ResultSummary
	Categories   []stats.CategorySummary
	Leaderboards []MetricLeaderboard
}

type DashboardService struct {
	teamRepo    team.Repository
	analytics   *AnalyticsService
	playerStats *PlayerStatsService
}

func NewDashboardService(teamRepo team.Repository, analytics *AnalyticsService, playerStats *PlayerStatsService) *DashboardService {
	return &DashboardService{
		teamRepo:    teamRepo,
		analytics:   analytics,
		playerStats: playerStats,
	}
}

// GetMyTeam builds the compact dashboard. An empty teamID selects the
// caller's first team, mirroring how the mobile app lands on a default
// squad before one is chosen.
func (s *DashboardService) GetMyTeam(ctx context.Context, teamID string) (MyTeamDashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetMyTeam")
	defer span.End()

	selected, err := s.resolveTeam(ctx, teamID)
	if err != nil {
		return MyTeamDashboard{}, err
	}

	analytics, err := s.analytics.GetTeamAnalytics(ctx, selected.ID)
	if err != nil {
		return MyTeamDashboard{}, err
	}

	boards, err := s.playerStats.GetLeaderboards(ctx, selected.ID, compactLeaderboardSize)
	if err != nil {
		return MyTeamDashboard{}, err
	}

	return MyTeamDashboard{
		Team:         selected,
		Summary:      analytics.Overall,
		Categories:   analytics.Categories,
		Leaderboards: boards,
	}, nil
}

func (s *DashboardService) resolveTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID != "" {
		selected, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return team.Team{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		return selected, nil
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return team.Team{}, fmt.Errorf("%w: no teams available", ErrNotFound)
	}

	return teams[0], nil
}
