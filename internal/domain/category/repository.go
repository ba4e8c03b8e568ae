package category

import "context"

// Repository exposes performance-category read operations.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]PerformanceCategory, error)
}
