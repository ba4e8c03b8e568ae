package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/stats"
)

// EventWithResults pairs an event with the classified results of every
// side fielded under it. Unplayed events carry no results.
type EventWithResults struct {
	Event   event.Event
	Results []stats.SlotResult
}

type EventService struct {
	eventRepo event.Repository
	analytics *AnalyticsService
}

func NewEventService(eventRepo event.Repository, analytics *AnalyticsService) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		analytics: analytics,
	}
}

// ListByTeam returns the team's full event list with W/D/L badges per
// fielded side, taken from the same computed view the analytics
// endpoints serve.
func (s *EventService) ListByTeam(ctx context.Context, teamID string) ([]EventWithResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	analytics, err := s.analytics.GetTeamAnalytics(ctx, teamID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	resultsByEvent := make(map[string][]stats.SlotResult, len(analytics.SlotResults))
	for _, slot := range analytics.SlotResults {
		resultsByEvent[slot.EventID] = append(resultsByEvent[slot.EventID], slot)
	}

	out := make([]EventWithResults, 0, len(events))
	for _, e := range events {
		out = append(out, EventWithResults{
			Event:   e,
			Results: resultsByEvent[e.ID],
		})
	}

	return out, nil
}
