package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubdeck/clubstats/internal/domain/player"
	"github.com/clubdeck/clubstats/internal/domain/team"
)

func dashboardFixture() *DashboardService {
	teamRepo, eventRepo, selectionRepo, categoryRepo := analyticsFixture()
	teamRepo.teams = append(teamRepo.teams, team.Team{ID: "team-u16", ClubID: "club-1", Name: "U16 Falcons"})

	playerRepo := &stubPlayerRepository{
		byTeam: map[string][]player.Player{
			testTeamID: {
				{ID: "p1", TeamID: testTeamID, Name: "Ayu", Status: player.StatusActive, Stats: player.MatchStats{TotalGoals: 5}},
				{ID: "p2", TeamID: testTeamID, Name: "Bima", Status: player.StatusActive, Stats: player.MatchStats{TotalGoals: 2}},
			},
		},
	}

	analytics := NewAnalyticsService(teamRepo, eventRepo, selectionRepo, categoryRepo, nil)
	analytics.now = func() time.Time { return time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC) }
	playerStats := NewPlayerStatsService(teamRepo, playerRepo)

	return NewDashboardService(teamRepo, analytics, playerStats)
}

func TestDashboardService_GetMyTeam(t *testing.T) {
	t.Parallel()

	service := dashboardFixture()

	dashboard, err := service.GetMyTeam(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("GetMyTeam error: %v", err)
	}

	if dashboard.Team.ID != testTeamID {
		t.Fatalf("unexpected team: %+v", dashboard.Team)
	}
	if dashboard.Summary.TotalGames != 2 {
		t.Fatalf("unexpected summary: %+v", dashboard.Summary)
	}
	if len(dashboard.Leaderboards) == 0 {
		t.Fatalf("expected compact leaderboards to be filled")
	}
	for _, board := range dashboard.Leaderboards {
		if len(board.Entries) > compactLeaderboardSize {
			t.Fatalf("board %s exceeds compact size: %+v", board.Metric, board.Entries)
		}
	}
}

func TestDashboardService_GetMyTeam_DefaultsToFirstTeam(t *testing.T) {
	t.Parallel()

	service := dashboardFixture()

	dashboard, err := service.GetMyTeam(context.Background(), "")
	if err != nil {
		t.Fatalf("GetMyTeam error: %v", err)
	}
	if dashboard.Team.ID != testTeamID {
		t.Fatalf("expected first team fallback, got %+v", dashboard.Team)
	}
}

func TestDashboardService_GetMyTeam_UnknownTeam(t *testing.T) {
	t.Parallel()

	service := dashboardFixture()

	if _, err := service.GetMyTeam(context.Background(), "team-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
