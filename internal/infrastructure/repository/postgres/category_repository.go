package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubdeck/clubstats/internal/domain/category"
	qb "github.com/clubdeck/clubstats/internal/platform/querybuilder"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByTeam(ctx context.Context, teamID string) ([]category.PerformanceCategory, error) {
	query, args, err := qb.Select(
		"public_id",
		"team_public_id",
		"name",
		"description",
	).From("performance_categories").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select performance categories query: %w", err)
	}

	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select performance categories: %w", err)
	}

	out := make([]category.PerformanceCategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, category.PerformanceCategory{
			ID:          row.PublicID,
			TeamID:      row.TeamID,
			Name:        row.Name,
			Description: nullStringToString(row.Description),
		})
	}

	return out, nil
}

type categoryRow struct {
	PublicID    string         `db:"public_id"`
	TeamID      string         `db:"team_public_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}
