package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubdeck/clubstats/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	rostersByTeam map[string][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	rostersByTeam := make(map[string][]player.Player)
	for _, item := range players {
		rostersByTeam[item.TeamID] = append(rostersByTeam[item.TeamID], item)
	}
	// Squad-number order keeps leaderboard tie-breaks deterministic.
	for teamID := range rostersByTeam {
		roster := rostersByTeam[teamID]
		sort.SliceStable(roster, func(i, j int) bool { return roster[i].SquadNumber < roster[j].SquadNumber })
		rostersByTeam[teamID] = roster
	}

	return &PlayerRepository{rostersByTeam: rostersByTeam}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roster := r.rostersByTeam[teamID]
	out := make([]player.Player, 0, len(roster))
	out = append(out, roster...)

	return out, nil
}
