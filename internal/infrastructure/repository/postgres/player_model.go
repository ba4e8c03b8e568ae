package postgres

import "time"

type playerTableModel struct {
	ID                    int64      `db:"id"`
	PublicID              string     `db:"public_id"`
	TeamID                string     `db:"team_public_id"`
	Name                  string     `db:"name"`
	SquadNumber           int        `db:"squad_number"`
	Status                string     `db:"status"`
	TotalGames            int        `db:"total_games"`
	TotalMinutes          int        `db:"total_minutes"`
	TotalGoals            int        `db:"total_goals"`
	TotalAssists          int        `db:"total_assists"`
	TotalSaves            int        `db:"total_saves"`
	YellowCards           int        `db:"yellow_cards"`
	RedCards              int        `db:"red_cards"`
	CaptainGames          int        `db:"captain_games"`
	PlayerOfTheMatchCount int        `db:"player_of_the_match_count"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
	DeletedAt             *time.Time `db:"deleted_at"`
}
