package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/clubdeck/clubstats/internal/domain/category"
	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/selection"
	"github.com/clubdeck/clubstats/internal/domain/stats"
	"github.com/clubdeck/clubstats/internal/domain/team"
	"github.com/clubdeck/clubstats/internal/platform/cache"
)

const analyticsCachePrefix = "analytics:"

// AnalyticsService assembles a team's snapshot and runs the result
// aggregation engine over it. The engine itself is pure; this service
// owns snapshot acquisition and caching.
type AnalyticsService struct {
	teamRepo      team.Repository
	eventRepo     event.Repository
	selectionRepo selection.Repository
	categoryRepo  category.Repository
	store         *cache.Store
	now           func() time.Time
}

func NewAnalyticsService(
	teamRepo team.Repository,
	eventRepo event.Repository,
	selectionRepo selection.Repository,
	categoryRepo category.Repository,
	store *cache.Store,
) *AnalyticsService {
	return &AnalyticsService{
		teamRepo:      teamRepo,
		eventRepo:     eventRepo,
		selectionRepo: selectionRepo,
		categoryRepo:  categoryRepo,
		store:         store,
		now:           time.Now,
	}
}

// GetTeamAnalytics returns the derived result view for one team,
// served from the TTL cache when warm.
func (s *AnalyticsService) GetTeamAnalytics(ctx context.Context, teamID string) (stats.TeamAnalytics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.GetTeamAnalytics")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return stats.TeamAnalytics{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if s.store == nil {
		return s.computeForTeam(ctx, teamID)
	}

	value, err := s.store.GetOrLoad(ctx, analyticsCachePrefix+teamID, func(ctx context.Context) (any, error) {
		return s.computeForTeam(ctx, teamID)
	})
	if err != nil {
		return stats.TeamAnalytics{}, err
	}

	analytics, ok := value.(stats.TeamAnalytics)
	if !ok {
		return stats.TeamAnalytics{}, fmt.Errorf("unexpected cached analytics type %T", value)
	}

	return analytics, nil
}

// Refresh drops any cached view and recomputes. Used by the warm job.
func (s *AnalyticsService) Refresh(ctx context.Context, teamID string) (stats.TeamAnalytics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Refresh")
	defer span.End()

	if s.store != nil {
		s.store.Delete(ctx, analyticsCachePrefix+strings.TrimSpace(teamID))
	}

	return s.GetTeamAnalytics(ctx, teamID)
}

func (s *AnalyticsService) computeForTeam(ctx context.Context, teamID string) (stats.TeamAnalytics, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return stats.TeamAnalytics{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return stats.TeamAnalytics{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	snap, err := s.fetchSnapshot(ctx, item)
	if err != nil {
		return stats.TeamAnalytics{}, err
	}

	return stats.Compute(snap), nil
}

// fetchSnapshot issues the independent reads concurrently; selections
// depend on the fetched event IDs and follow afterwards. The engine is
// only invoked once every input has resolved.
func (s *AnalyticsService) fetchSnapshot(ctx context.Context, item team.Team) (stats.Snapshot, error) {
	var (
		events     []event.Event
		categories []category.PerformanceCategory
	)

	before := startOfDayUTC(s.now())
	fetch := pool.New().WithContext(ctx)
	fetch.Go(func(ctx context.Context) error {
		listed, err := s.eventRepo.ListPlayedByTeam(ctx, item.ID, before)
		if err != nil {
			return fmt.Errorf("list played events: %w", err)
		}
		events = listed
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		listed, err := s.categoryRepo.ListByTeam(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list performance categories: %w", err)
		}
		categories = listed
		return nil
	})
	if err := fetch.Wait(); err != nil {
		return stats.Snapshot{}, err
	}

	eventIDs := make([]string, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}

	selections, err := s.selectionRepo.ListByEventIDs(ctx, eventIDs)
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("list event selections: %w", err)
	}

	return stats.Snapshot{
		TeamName:   item.Name,
		Events:     events,
		Selections: selections,
		Categories: categories,
	}, nil
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
