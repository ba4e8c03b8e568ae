package memory

import (
	"context"
	"sync"

	"github.com/clubdeck/clubstats/internal/domain/category"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	rowsByTeam map[string][]category.PerformanceCategory
}

func NewCategoryRepository(rows []category.PerformanceCategory) *CategoryRepository {
	rowsByTeam := make(map[string][]category.PerformanceCategory)
	for _, item := range rows {
		rowsByTeam[item.TeamID] = append(rowsByTeam[item.TeamID], item)
	}

	return &CategoryRepository{rowsByTeam: rowsByTeam}
}

func (r *CategoryRepository) ListByTeam(_ context.Context, teamID string) ([]category.PerformanceCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.rowsByTeam[teamID]
	out := make([]category.PerformanceCategory, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}
