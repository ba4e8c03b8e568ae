package memory

import (
	"time"

	"github.com/clubdeck/clubstats/internal/domain/category"
	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/player"
	"github.com/clubdeck/clubstats/internal/domain/selection"
	"github.com/clubdeck/clubstats/internal/domain/team"
)

const (
	ClubIDRiversideFC = "club-riverside-fc"

	TeamIDU12 = "team-riverside-u12"
	TeamIDU14 = "team-riverside-u14"
)

func boolPtr(v bool) *bool { return &v }

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDU12, ClubID: ClubIDRiversideFC, Name: "Riverside U12", AgeGroup: "U12", Season: "2025/2026"},
		{ID: TeamIDU14, ClubID: ClubIDRiversideFC, Name: "Riverside U14", AgeGroup: "U14", Season: "2025/2026"},
	}
}

func SeedCategories() []category.PerformanceCategory {
	return []category.PerformanceCategory{
		{ID: "cat-u12-red", TeamID: TeamIDU12, Name: "Red", Description: "Development squad"},
		{ID: "cat-u12-blue", TeamID: TeamIDU12, Name: "Blue", Description: "Match-day squad"},
		{ID: "cat-u14-a", TeamID: TeamIDU14, Name: "A Team"},
		{ID: "cat-u14-b", TeamID: TeamIDU14, Name: "B Team"},
	}
}

func SeedEvents() []event.Event {
	return []event.Event{
		// U12 fields two sides on the same fixture, slot scores recorded
		// in the team_{n}/opponent_{n} encoding.
		{
			ID:        "evt-u12-001",
			TeamID:    TeamIDU12,
			Date:      time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC),
			Opponent:  "Hillcrest Juniors",
			IsHome:    boolPtr(true),
			EventType: event.TypeMatch,
			Location:  "Riverside Park",
			Scores: map[string]any{
				"team_1": 3, "opponent_1": 1,
				"team_2": "2", "opponent_2": "2",
			},
		},
		// Legacy single-slot record from before the encoding change.
		{
			ID:        "evt-u12-002",
			TeamID:    TeamIDU12,
			Date:      time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC),
			Opponent:  "Oakwood Colts",
			IsHome:    boolPtr(false),
			EventType: event.TypeFixture,
			Location:  "Oakwood Rec",
			Scores:    map[string]any{"home": 4, "away": 2},
		},
		// Played but no score entered yet.
		{
			ID:        "evt-u12-003",
			TeamID:    TeamIDU12,
			Date:      time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC),
			Opponent:  "Kingsway Youth",
			IsHome:    boolPtr(true),
			EventType: event.TypeMatch,
			Location:  "Riverside Park",
		},
		{
			ID:        "evt-u14-001",
			TeamID:    TeamIDU14,
			Date:      time.Date(2026, 2, 8, 11, 30, 0, 0, time.UTC),
			Opponent:  "Hillcrest Juniors",
			IsHome:    boolPtr(false),
			EventType: event.TypeMatch,
			Location:  "Hillcrest 3G",
			Scores: map[string]any{
				"team_1": 0, "opponent_1": 2,
			},
		},
		{
			ID:        "evt-u14-002",
			TeamID:    TeamIDU14,
			Date:      time.Date(2026, 2, 15, 11, 30, 0, 0, time.UTC),
			Opponent:  "Southgate Saints",
			IsHome:    boolPtr(true),
			EventType: event.TypeFriendly,
			Location:  "Riverside Park",
			Scores: map[string]any{
				"team_1": 5, "opponent_1": 0,
				"team_2": 1, "opponent_2": 1,
			},
		},
		{
			ID:        "evt-u14-003",
			TeamID:    TeamIDU14,
			Date:      time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC),
			Opponent:  "Summer Cup",
			EventType: event.TypeTournament,
			Location:  "County Showground",
		},
	}
}

func SeedSelections() []selection.EventSelection {
	return []selection.EventSelection{
		{EventID: "evt-u12-001", TeamNumber: 1, PerformanceCategoryID: "cat-u12-red"},
		{EventID: "evt-u12-001", TeamNumber: 2, PerformanceCategoryID: "cat-u12-blue"},
		{EventID: "evt-u14-001", TeamNumber: 1, PerformanceCategoryID: "cat-u14-a"},
		{EventID: "evt-u14-002", TeamNumber: 1, PerformanceCategoryID: "cat-u14-a"},
		{EventID: "evt-u14-002", TeamNumber: 2, PerformanceCategoryID: "cat-u14-b"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ply-u12-01", TeamID: TeamIDU12, Name: "Sam Whitfield", SquadNumber: 1, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 8, TotalMinutes: 480, TotalSaves: 21}},
		{ID: "ply-u12-02", TeamID: TeamIDU12, Name: "Leo Okafor", SquadNumber: 4, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 9, TotalMinutes: 540, TotalGoals: 2, TotalAssists: 1, YellowCards: 1}},
		{ID: "ply-u12-03", TeamID: TeamIDU12, Name: "Mia Jarvis", SquadNumber: 7, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 9, TotalMinutes: 500, TotalGoals: 7, TotalAssists: 3, PlayerOfTheMatchCount: 2}},
		{ID: "ply-u12-04", TeamID: TeamIDU12, Name: "Noah Prasetyo", SquadNumber: 9, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 7, TotalMinutes: 410, TotalGoals: 5, CaptainGames: 7}},
		{ID: "ply-u12-05", TeamID: TeamIDU12, Name: "Ella Brennan", SquadNumber: 11, Status: player.StatusLeft, Stats: player.MatchStats{TotalGames: 3, TotalMinutes: 150, TotalGoals: 1}},
		{ID: "ply-u14-01", TeamID: TeamIDU14, Name: "Jack Moreno", SquadNumber: 1, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 10, TotalMinutes: 700, TotalSaves: 34}},
		{ID: "ply-u14-02", TeamID: TeamIDU14, Name: "Priya Nair", SquadNumber: 6, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 10, TotalMinutes: 690, TotalGoals: 3, TotalAssists: 6, CaptainGames: 10, PlayerOfTheMatchCount: 1}},
		{ID: "ply-u14-03", TeamID: TeamIDU14, Name: "Owen Castle", SquadNumber: 8, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 9, TotalMinutes: 610, TotalGoals: 4, TotalAssists: 2, YellowCards: 2, RedCards: 1}},
		{ID: "ply-u14-04", TeamID: TeamIDU14, Name: "Tariq Hassan", SquadNumber: 10, Status: player.StatusActive, Stats: player.MatchStats{TotalGames: 10, TotalMinutes: 680, TotalGoals: 9, TotalAssists: 4, PlayerOfTheMatchCount: 3}},
		{ID: "ply-u14-05", TeamID: TeamIDU14, Name: "Freya Lindqvist", SquadNumber: 14, Status: player.StatusInactive, Stats: player.MatchStats{TotalGames: 4, TotalMinutes: 220, TotalGoals: 1, TotalAssists: 1}},
	}
}
