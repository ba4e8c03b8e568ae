package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubdeck/clubstats/internal/domain/event"
	qb "github.com/clubdeck/clubstats/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByTeam(ctx context.Context, teamID string) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("event_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events by team query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events by team: %w", err)
	}

	return eventsFromRows(rows), nil
}

func (r *EventRepository) ListPlayedByTeam(ctx context.Context, teamID string, before time.Time) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Lt("event_date", before),
			qb.IsNotNull("scores"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("event_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select played events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select played events: %w", err)
	}

	// A row can carry `scores = 'null'::jsonb`; decoding filters those
	// out the same way a missing column would.
	events := eventsFromRows(rows)
	out := make([]event.Event, 0, len(events))
	for _, item := range events {
		if item.HasResult() {
			out = append(out, item)
		}
	}

	return out, nil
}

func eventsFromRows(rows []eventTableModel) []event.Event {
	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, event.Event{
			ID:        row.PublicID,
			TeamID:    row.TeamID,
			Date:      row.EventDate,
			Opponent:  nullStringToString(row.Opponent),
			IsHome:    nullBoolToPtr(row.IsHome),
			Scores:    decodeScores(row.Scores),
			EventType: row.EventType,
			Location:  nullStringToString(row.Location),
			Notes:     nullStringToString(row.Notes),
		})
	}
	return out
}
