package stats

import (
	"sort"

	"github.com/clubdeck/clubstats/internal/domain/player"
)

// Metric selects one ranked statistic.
type Metric string

const (
	MetricMinutes          Metric = "minutes"
	MetricGames            Metric = "games"
	MetricCaptainGames     Metric = "captain_games"
	MetricPlayerOfTheMatch Metric = "player_of_the_match"
	MetricGoals            Metric = "goals"
	MetricAssists          Metric = "assists"
	MetricSaves            Metric = "saves"
	MetricDiscipline       Metric = "discipline"
)

var AllMetrics = []Metric{
	MetricMinutes,
	MetricGames,
	MetricCaptainGames,
	MetricPlayerOfTheMatch,
	MetricGoals,
	MetricAssists,
	MetricSaves,
	MetricDiscipline,
}

func (m Metric) Valid() bool {
	switch m {
	case MetricMinutes, MetricGames, MetricCaptainGames, MetricPlayerOfTheMatch,
		MetricGoals, MetricAssists, MetricSaves, MetricDiscipline:
		return true
	default:
		return false
	}
}

// Value reads the metric from a stat block. Discipline weights a red
// card as two yellows.
func (m Metric) Value(s player.MatchStats) int {
	switch m {
	case MetricMinutes:
		return s.TotalMinutes
	case MetricGames:
		return s.TotalGames
	case MetricCaptainGames:
		return s.CaptainGames
	case MetricPlayerOfTheMatch:
		return s.PlayerOfTheMatchCount
	case MetricGoals:
		return s.TotalGoals
	case MetricAssists:
		return s.TotalAssists
	case MetricSaves:
		return s.TotalSaves
	case MetricDiscipline:
		return s.YellowCards + 2*s.RedCards
	default:
		return 0
	}
}

// includesZeroValues reports whether players with a zero metric still
// appear on the board. Minutes and games are reported for the whole
// roster; every other metric hides players who never recorded it.
func (m Metric) includesZeroValues() bool {
	return m == MetricMinutes || m == MetricGames
}

// RankedEntry is one leaderboard row.
type RankedEntry struct {
	PlayerID    string
	PlayerName  string
	SquadNumber int
	Value       int
}

// BuildLeaderboard ranks players by metric, descending, truncated to
// topN. Ties keep the incoming roster order: sort.SliceStable is the
// whole tie-break policy, there is no secondary key.
func BuildLeaderboard(players []player.Player, metric Metric, topN int) []RankedEntry {
	if topN <= 0 || !metric.Valid() {
		return nil
	}

	entries := make([]RankedEntry, 0, len(players))
	for _, p := range players {
		value := metric.Value(p.Stats)
		if value <= 0 && !metric.includesZeroValues() {
			continue
		}
		entries = append(entries, RankedEntry{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			SquadNumber: p.SquadNumber,
			Value:       value,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}

	return entries
}

// TeamTotals sums every stat field across players with the given
// status. An empty status sums the whole roster.
func TeamTotals(players []player.Player, status player.Status) player.MatchStats {
	var totals player.MatchStats
	for _, p := range players {
		if status != "" && p.Status != status {
			continue
		}
		totals = totals.Add(p.Stats)
	}

	return totals
}
