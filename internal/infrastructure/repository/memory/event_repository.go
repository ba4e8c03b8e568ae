package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/clubdeck/clubstats/internal/domain/event"
)

type EventRepository struct {
	mu           sync.RWMutex
	eventsByTeam map[string][]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	eventsByTeam := make(map[string][]event.Event)
	for _, item := range events {
		eventsByTeam[item.TeamID] = append(eventsByTeam[item.TeamID], item)
	}
	for teamID := range eventsByTeam {
		rows := eventsByTeam[teamID]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
		eventsByTeam[teamID] = rows
	}

	return &EventRepository{eventsByTeam: eventsByTeam}
}

func (r *EventRepository) ListByTeam(_ context.Context, teamID string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.eventsByTeam[teamID]
	out := make([]event.Event, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}

func (r *EventRepository) ListPlayedByTeam(_ context.Context, teamID string, before time.Time) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.eventsByTeam[teamID]
	out := make([]event.Event, 0, len(rows))
	for _, item := range rows {
		if item.HasResult() && item.Date.Before(before) {
			out = append(out, item)
		}
	}

	return out, nil
}
