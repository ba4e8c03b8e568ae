package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/clubdeck/clubstats/internal/domain/category"
	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/player"
	"github.com/clubdeck/clubstats/internal/domain/selection"
	"github.com/clubdeck/clubstats/internal/domain/team"
)

type stubTeamRepository struct {
	teams []team.Team
}

func (s *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	return append([]team.Team(nil), s.teams...), nil
}

func (s *stubTeamRepository) ListByClub(_ context.Context, clubID string) ([]team.Team, error) {
	out := make([]team.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if t.ClubID == clubID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	for _, t := range s.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

type stubEventRepository struct {
	byTeam     map[string][]event.Event
	listCalls  atomic.Int32
	lastBefore time.Time
}

func (s *stubEventRepository) ListByTeam(_ context.Context, teamID string) ([]event.Event, error) {
	return append([]event.Event(nil), s.byTeam[teamID]...), nil
}

func (s *stubEventRepository) ListPlayedByTeam(_ context.Context, teamID string, before time.Time) ([]event.Event, error) {
	s.listCalls.Add(1)
	s.lastBefore = before

	out := make([]event.Event, 0)
	for _, e := range s.byTeam[teamID] {
		if e.HasResult() && e.Date.Before(before) {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubSelectionRepository struct {
	rows []selection.EventSelection
}

func (s *stubSelectionRepository) ListByEventIDs(_ context.Context, eventIDs []string) ([]selection.EventSelection, error) {
	wanted := make(map[string]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		wanted[id] = struct{}{}
	}

	out := make([]selection.EventSelection, 0, len(s.rows))
	for _, row := range s.rows {
		if _, ok := wanted[row.EventID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubCategoryRepository struct {
	byTeam map[string][]category.PerformanceCategory
}

func (s *stubCategoryRepository) ListByTeam(_ context.Context, teamID string) ([]category.PerformanceCategory, error) {
	return append([]category.PerformanceCategory(nil), s.byTeam[teamID]...), nil
}

type stubPlayerRepository struct {
	byTeam map[string][]player.Player
}

func (s *stubPlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	return append([]player.Player(nil), s.byTeam[teamID]...), nil
}
