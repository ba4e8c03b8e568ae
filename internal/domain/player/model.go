package player

import "fmt"

// Status represents roster membership states.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusLeft     Status = "left"
)

var AllStatuses = map[Status]struct{}{
	StatusActive:   {},
	StatusInactive: {},
	StatusLeft:     {},
}

// MatchStats is the per-player aggregate maintained by the club
// backend. The analytics engine only filters, sums, and ranks these
// values; it never recomputes them from raw match events.
type MatchStats struct {
	TotalGames            int
	TotalMinutes          int
	TotalGoals            int
	TotalAssists          int
	TotalSaves            int
	YellowCards           int
	RedCards              int
	CaptainGames          int
	PlayerOfTheMatchCount int
}

// Add returns the field-wise sum of two stat blocks.
func (s MatchStats) Add(other MatchStats) MatchStats {
	return MatchStats{
		TotalGames:            s.TotalGames + other.TotalGames,
		TotalMinutes:          s.TotalMinutes + other.TotalMinutes,
		TotalGoals:            s.TotalGoals + other.TotalGoals,
		TotalAssists:          s.TotalAssists + other.TotalAssists,
		TotalSaves:            s.TotalSaves + other.TotalSaves,
		YellowCards:           s.YellowCards + other.YellowCards,
		RedCards:              s.RedCards + other.RedCards,
		CaptainGames:          s.CaptainGames + other.CaptainGames,
		PlayerOfTheMatchCount: s.PlayerOfTheMatchCount + other.PlayerOfTheMatchCount,
	}
}

// Player is a roster entry with its embedded season stat block.
type Player struct {
	ID          string
	TeamID      string
	Name        string
	SquadNumber int
	Status      Status
	Stats       MatchStats
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}

	return nil
}
