package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubdeck/clubstats/internal/domain/selection"
	qb "github.com/clubdeck/clubstats/internal/platform/querybuilder"
)

type SelectionRepository struct {
	db *sqlx.DB
}

func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

func (r *SelectionRepository) ListByEventIDs(ctx context.Context, eventIDs []string) ([]selection.EventSelection, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(eventIDs))
	for _, id := range eventIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select(
		"event_public_id",
		"team_number",
		"performance_category_public_id",
	).From("event_selections").
		Where(
			qb.In("event_public_id", values),
			qb.IsNull("deleted_at"),
		).
		OrderBy("event_public_id", "team_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select event selections query: %w", err)
	}

	var rows []selectionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select event selections: %w", err)
	}

	out := make([]selection.EventSelection, 0, len(rows))
	for _, row := range rows {
		out = append(out, selection.EventSelection{
			EventID:               row.EventID,
			TeamNumber:            row.TeamNumber,
			PerformanceCategoryID: nullStringToString(row.CategoryID),
		})
	}

	return out, nil
}

type selectionRow struct {
	EventID    string         `db:"event_public_id"`
	TeamNumber int            `db:"team_number"`
	CategoryID sql.NullString `db:"performance_category_public_id"`
}
