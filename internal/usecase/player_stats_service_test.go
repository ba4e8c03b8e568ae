package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/clubdeck/clubstats/internal/domain/player"
	"github.com/clubdeck/clubstats/internal/domain/stats"
	"github.com/clubdeck/clubstats/internal/domain/team"
)

func playerStatsFixture() *PlayerStatsService {
	teamRepo := &stubTeamRepository{
		teams: []team.Team{{ID: testTeamID, ClubID: "club-1", Name: "U14 Falcons"}},
	}
	playerRepo := &stubPlayerRepository{
		byTeam: map[string][]player.Player{
			testTeamID: {
				{ID: "p1", TeamID: testTeamID, Name: "Ayu", Status: player.StatusActive, Stats: player.MatchStats{TotalGoals: 5, TotalGames: 10, TotalMinutes: 800}},
				{ID: "p2", TeamID: testTeamID, Name: "Bima", Status: player.StatusActive, Stats: player.MatchStats{TotalGoals: 5, TotalAssists: 4, TotalGames: 9}},
				{ID: "p3", TeamID: testTeamID, Name: "Citra", Status: player.StatusActive, Stats: player.MatchStats{TotalGoals: 3, TotalSaves: 20, TotalGames: 10}},
				{ID: "p4", TeamID: testTeamID, Name: "Dewi", Status: player.StatusLeft, Stats: player.MatchStats{TotalGoals: 8}},
				{ID: "p5", TeamID: testTeamID, Name: "Eka", Status: player.StatusActive, Stats: player.MatchStats{TotalGoals: 2, YellowCards: 1}},
			},
		},
	}

	return NewPlayerStatsService(teamRepo, playerRepo)
}

func TestPlayerStatsService_GetTeamTotals_ActiveOnly(t *testing.T) {
	t.Parallel()

	service := playerStatsFixture()

	totals, err := service.GetTeamTotals(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("GetTeamTotals error: %v", err)
	}

	if totals.TotalGoals != 15 {
		t.Fatalf("expected departed players excluded from totals, got %+v", totals)
	}
	if totals.TotalAssists != 4 || totals.TotalSaves != 20 || totals.YellowCards != 1 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestPlayerStatsService_GetLeaderboard_TopNAndTies(t *testing.T) {
	t.Parallel()

	service := playerStatsFixture()

	board, err := service.GetLeaderboard(context.Background(), testTeamID, stats.MetricGoals, 3)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}

	if len(board) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board))
	}
	// p1 and p2 tie on 5; roster order decides.
	if board[0].PlayerID != "p1" || board[1].PlayerID != "p2" || board[2].PlayerID != "p3" {
		t.Fatalf("unexpected ranking: %+v", board)
	}
}

func TestPlayerStatsService_GetLeaderboard_DefaultsAndValidation(t *testing.T) {
	t.Parallel()

	service := playerStatsFixture()

	board, err := service.GetLeaderboard(context.Background(), testTeamID, stats.MetricGoals, 0)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}
	if len(board) != 4 {
		t.Fatalf("expected default size to keep all four active scorers, got %d", len(board))
	}

	if _, err := service.GetLeaderboard(context.Background(), testTeamID, stats.Metric("nutmegs"), 3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown metric, got %v", err)
	}
	if _, err := service.GetLeaderboard(context.Background(), testTeamID, stats.MetricGoals, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative size, got %v", err)
	}
	if _, err := service.GetLeaderboard(context.Background(), "team-missing", stats.MetricGoals, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerStatsService_GetLeaderboards_CoversAllMetrics(t *testing.T) {
	t.Parallel()

	service := playerStatsFixture()

	boards, err := service.GetLeaderboards(context.Background(), testTeamID, 3)
	if err != nil {
		t.Fatalf("GetLeaderboards error: %v", err)
	}

	if len(boards) != len(stats.AllMetrics) {
		t.Fatalf("expected one board per metric, got %d", len(boards))
	}
	for _, board := range boards {
		if len(board.Entries) > 3 {
			t.Fatalf("board %s exceeds requested size: %+v", board.Metric, board.Entries)
		}
	}
}
