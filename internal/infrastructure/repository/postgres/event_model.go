package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	TeamID    string         `db:"team_public_id"`
	EventDate time.Time      `db:"event_date"`
	Opponent  sql.NullString `db:"opponent"`
	IsHome    sql.NullBool   `db:"is_home"`
	Scores    sql.NullString `db:"scores"`
	EventType string         `db:"event_type"`
	Location  sql.NullString `db:"location"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}
