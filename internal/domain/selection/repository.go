package selection

import "context"

// Repository exposes event-selection read operations.
type Repository interface {
	ListByEventIDs(ctx context.Context, eventIDs []string) ([]EventSelection, error)
}
