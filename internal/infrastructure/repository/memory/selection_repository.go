package memory

import (
	"context"
	"sync"

	"github.com/clubdeck/clubstats/internal/domain/selection"
)

type SelectionRepository struct {
	mu          sync.RWMutex
	rowsByEvent map[string][]selection.EventSelection
}

func NewSelectionRepository(rows []selection.EventSelection) *SelectionRepository {
	rowsByEvent := make(map[string][]selection.EventSelection)
	for _, item := range rows {
		rowsByEvent[item.EventID] = append(rowsByEvent[item.EventID], item)
	}

	return &SelectionRepository{rowsByEvent: rowsByEvent}
}

func (r *SelectionRepository) ListByEventIDs(_ context.Context, eventIDs []string) ([]selection.EventSelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]selection.EventSelection, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		out = append(out, r.rowsByEvent[eventID]...)
	}

	return out, nil
}
