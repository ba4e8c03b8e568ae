package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubdeck/clubstats/internal/domain/player"
	"github.com/clubdeck/clubstats/internal/domain/stats"
	"github.com/clubdeck/clubstats/internal/domain/team"
)

// DefaultLeaderboardSize is used when a caller does not pick a size.
// Compact mobile views ask for 3, full views for 5.
const DefaultLeaderboardSize = 5

const maxLeaderboardSize = 50

// MetricLeaderboard is one ranked board for a single metric.
type MetricLeaderboard struct {
	Metric  stats.Metric
	Entries []stats.RankedEntry
}

type PlayerStatsService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewPlayerStatsService(teamRepo team.Repository, playerRepo player.Repository) *PlayerStatsService {
	return &PlayerStatsService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// GetTeamTotals sums the roster's stat blocks. Only active players
// count; departed players keep their history in the source data but
// drop out of team totals.
func (s *PlayerStatsService) GetTeamTotals(ctx context.Context, teamID string) (player.MatchStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetTeamTotals")
	defer span.End()

	roster, err := s.roster(ctx, teamID)
	if err != nil {
		return player.MatchStats{}, err
	}

	return stats.TeamTotals(roster, player.StatusActive), nil
}

// GetLeaderboard ranks one metric for a team.
func (s *PlayerStatsService) GetLeaderboard(ctx context.Context, teamID string, metric stats.Metric, topN int) ([]stats.RankedEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetLeaderboard")
	defer span.End()

	if !metric.Valid() {
		return nil, fmt.Errorf("%w: unknown leaderboard metric %q", ErrInvalidInput, metric)
	}
	topN, err := normalizeTopN(topN)
	if err != nil {
		return nil, err
	}

	roster, err := s.roster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return stats.BuildLeaderboard(activeOnly(roster), metric, topN), nil
}

// GetLeaderboards builds every tracked board at once, in the fixed
// metric order dashboards render them in.
func (s *PlayerStatsService) GetLeaderboards(ctx context.Context, teamID string, topN int) ([]MetricLeaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetLeaderboards")
	defer span.End()

	topN, err := normalizeTopN(topN)
	if err != nil {
		return nil, err
	}

	roster, err := s.roster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	active := activeOnly(roster)
	boards := make([]MetricLeaderboard, 0, len(stats.AllMetrics))
	for _, metric := range stats.AllMetrics {
		boards = append(boards, MetricLeaderboard{
			Metric:  metric,
			Entries: stats.BuildLeaderboard(active, metric, topN),
		})
	}

	return boards, nil
}

func (s *PlayerStatsService) roster(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	roster, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return roster, nil
}

func activeOnly(roster []player.Player) []player.Player {
	out := make([]player.Player, 0, len(roster))
	for _, p := range roster {
		if p.Status == player.StatusActive {
			out = append(out, p)
		}
	}
	return out
}

func normalizeTopN(topN int) (int, error) {
	if topN == 0 {
		return DefaultLeaderboardSize, nil
	}
	if topN < 0 || topN > maxLeaderboardSize {
		return 0, fmt.Errorf("%w: leaderboard size must be between 1 and %d", ErrInvalidInput, maxLeaderboardSize)
	}
	return topN, nil
}
