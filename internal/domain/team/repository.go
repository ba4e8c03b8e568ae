package team

import "context"

// Repository exposes team read operations.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByClub(ctx context.Context, clubID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
