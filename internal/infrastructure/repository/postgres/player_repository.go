package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubdeck/clubstats/internal/domain/player"
	qb "github.com/clubdeck/clubstats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("squad_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:          row.PublicID,
			TeamID:      row.TeamID,
			Name:        row.Name,
			SquadNumber: row.SquadNumber,
			Status:      player.Status(row.Status),
			Stats: player.MatchStats{
				TotalGames:            row.TotalGames,
				TotalMinutes:          row.TotalMinutes,
				TotalGoals:            row.TotalGoals,
				TotalAssists:          row.TotalAssists,
				TotalSaves:            row.TotalSaves,
				YellowCards:           row.YellowCards,
				RedCards:              row.RedCards,
				CaptainGames:          row.CaptainGames,
				PlayerOfTheMatchCount: row.PlayerOfTheMatchCount,
			},
		})
	}

	return out, nil
}
