package event

import (
	"context"
	"time"
)

// Repository exposes event read operations.
type Repository interface {
	// ListByTeam returns every event for a team ordered by date.
	ListByTeam(ctx context.Context, teamID string) ([]Event, error)
	// ListPlayedByTeam returns events dated strictly before the given
	// day that have a recorded score payload.
	ListPlayedByTeam(ctx context.Context, teamID string, before time.Time) ([]Event, error)
}
