package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubdeck/clubstats/internal/domain/stats"
)

func eventServiceFixture() *EventService {
	teamRepo, eventRepo, selectionRepo, categoryRepo := analyticsFixture()
	analytics := NewAnalyticsService(teamRepo, eventRepo, selectionRepo, categoryRepo, nil)
	analytics.now = func() time.Time { return time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC) }

	return NewEventService(eventRepo, analytics)
}

func TestEventService_ListByTeam(t *testing.T) {
	t.Parallel()

	service := eventServiceFixture()

	events, err := service.ListByTeam(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("ListByTeam error: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("expected all events back, got %d", len(events))
	}

	byID := make(map[string]EventWithResults, len(events))
	for _, e := range events {
		byID[e.Event.ID] = e
	}

	played := byID["evt-1"]
	if len(played.Results) != 2 {
		t.Fatalf("expected one result per fielded side, got %+v", played.Results)
	}
	if played.Results[0].Result != stats.OutcomeWin || played.Results[1].Result != stats.OutcomeDraw {
		t.Fatalf("unexpected results: %+v", played.Results)
	}

	if got := byID["evt-2"].Results; got != nil {
		t.Fatalf("unplayed event should carry no results, got %+v", got)
	}
	if got := byID["evt-future"].Results; got != nil {
		t.Fatalf("future event should carry no results, got %+v", got)
	}
}

func TestEventService_ListByTeam_Validation(t *testing.T) {
	t.Parallel()

	service := eventServiceFixture()

	if _, err := service.ListByTeam(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.ListByTeam(context.Background(), "team-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
