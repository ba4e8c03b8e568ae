package player

import "context"

// Repository describes player roster reads needed by use cases.
type Repository interface {
	// ListByTeam returns the roster in its stored order. Leaderboard
	// tie-breaking depends on that order being stable.
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
}
