package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubdeck/clubstats/internal/domain/category"
	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/selection"
	"github.com/clubdeck/clubstats/internal/domain/team"
	"github.com/clubdeck/clubstats/internal/platform/cache"
)

const testTeamID = "team-u14"

func analyticsFixture() (*stubTeamRepository, *stubEventRepository, *stubSelectionRepository, *stubCategoryRepository) {
	teamRepo := &stubTeamRepository{
		teams: []team.Team{{ID: testTeamID, ClubID: "club-1", Name: "U14 Falcons"}},
	}
	eventRepo := &stubEventRepository{
		byTeam: map[string][]event.Event{
			testTeamID: {
				{
					ID:     "evt-1",
					TeamID: testTeamID,
					Date:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
					Scores: map[string]any{
						"team_1": "3", "opponent_1": "1",
						"team_2": "0", "opponent_2": "0",
					},
				},
				{
					ID:     "evt-2",
					TeamID: testTeamID,
					Date:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
					Scores: nil,
				},
				{
					ID:     "evt-future",
					TeamID: testTeamID,
					Date:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
					Scores: map[string]any{"team_1": "9", "opponent_1": "0"},
				},
			},
		},
	}
	selectionRepo := &stubSelectionRepository{
		rows: []selection.EventSelection{
			{EventID: "evt-1", TeamNumber: 1, PerformanceCategoryID: "cat-a"},
			{EventID: "evt-1", TeamNumber: 2, PerformanceCategoryID: "cat-b"},
		},
	}
	categoryRepo := &stubCategoryRepository{
		byTeam: map[string][]category.PerformanceCategory{
			testTeamID: {
				{ID: "cat-a", TeamID: testTeamID, Name: "A Team"},
				{ID: "cat-b", TeamID: testTeamID, Name: "B Team"},
			},
		},
	}

	return teamRepo, eventRepo, selectionRepo, categoryRepo
}

func TestAnalyticsService_GetTeamAnalytics(t *testing.T) {
	t.Parallel()

	teamRepo, eventRepo, selectionRepo, categoryRepo := analyticsFixture()
	service := NewAnalyticsService(teamRepo, eventRepo, selectionRepo, categoryRepo, nil)
	service.now = func() time.Time { return time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC) }

	got, err := service.GetTeamAnalytics(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("GetTeamAnalytics error: %v", err)
	}

	if got.Overall.TotalGames != 2 || got.Overall.Wins != 1 || got.Overall.Draws != 1 {
		t.Fatalf("unexpected overall summary: %+v", got.Overall)
	}
	if len(got.Categories) != 2 {
		t.Fatalf("expected 2 category partitions, got %+v", got.Categories)
	}

	wantBefore := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !eventRepo.lastBefore.Equal(wantBefore) {
		t.Fatalf("expected played-event cutoff %v, got %v", wantBefore, eventRepo.lastBefore)
	}
}

func TestAnalyticsService_GetTeamAnalytics_CachesSnapshot(t *testing.T) {
	t.Parallel()

	teamRepo, eventRepo, selectionRepo, categoryRepo := analyticsFixture()
	service := NewAnalyticsService(teamRepo, eventRepo, selectionRepo, categoryRepo, cache.NewStore(time.Minute))
	service.now = func() time.Time { return time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC) }

	first, err := service.GetTeamAnalytics(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	second, err := service.GetTeamAnalytics(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}

	if eventRepo.listCalls.Load() != 1 {
		t.Fatalf("expected one snapshot fetch, got %d", eventRepo.listCalls.Load())
	}
	if first.Overall != second.Overall {
		t.Fatalf("cached result diverged: %+v vs %+v", first.Overall, second.Overall)
	}
}

func TestAnalyticsService_Refresh_DropsCache(t *testing.T) {
	t.Parallel()

	teamRepo, eventRepo, selectionRepo, categoryRepo := analyticsFixture()
	service := NewAnalyticsService(teamRepo, eventRepo, selectionRepo, categoryRepo, cache.NewStore(time.Minute))
	service.now = func() time.Time { return time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC) }

	if _, err := service.GetTeamAnalytics(context.Background(), testTeamID); err != nil {
		t.Fatalf("warm call error: %v", err)
	}
	if _, err := service.Refresh(context.Background(), testTeamID); err != nil {
		t.Fatalf("refresh error: %v", err)
	}

	if eventRepo.listCalls.Load() != 2 {
		t.Fatalf("expected refresh to refetch, got %d fetches", eventRepo.listCalls.Load())
	}
}

func TestAnalyticsService_GetTeamAnalytics_Errors(t *testing.T) {
	t.Parallel()

	teamRepo, eventRepo, selectionRepo, categoryRepo := analyticsFixture()
	service := NewAnalyticsService(teamRepo, eventRepo, selectionRepo, categoryRepo, nil)

	if _, err := service.GetTeamAnalytics(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty id, got %v", err)
	}
	if _, err := service.GetTeamAnalytics(context.Background(), "team-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
