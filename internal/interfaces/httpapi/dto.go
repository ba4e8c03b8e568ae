package httpapi

import (
	"context"
	"time"

	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/player"
	"github.com/clubdeck/clubstats/internal/domain/stats"
	"github.com/clubdeck/clubstats/internal/domain/team"
	"github.com/clubdeck/clubstats/internal/usecase"
)

type teamDTO struct {
	ID       string `json:"id"`
	ClubID   string `json:"clubId"`
	Name     string `json:"name"`
	AgeGroup string `json:"ageGroup"`
	Season   string `json:"season"`
}

type resultSummaryDTO struct {
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	TotalGames      int     `json:"totalGames"`
	GoalsFor        int     `json:"goalsFor"`
	GoalsAgainst    int     `json:"goalsAgainst"`
	GoalDifference  int     `json:"goalDifference"`
	WinRatePct      int     `json:"winRatePct"`
	AvgGoalsPerGame float64 `json:"avgGoalsPerGame"`
	Points          int     `json:"points"`
}

type categorySummaryDTO struct {
	CategoryID   string           `json:"categoryId,omitempty"`
	CategoryName string           `json:"categoryName"`
	Summary      resultSummaryDTO `json:"summary"`
}

type teamAnalyticsDTO struct {
	Overall      resultSummaryDTO       `json:"overall"`
	Categories   []categorySummaryDTO   `json:"categories"`
	Leaderboards []metricLeaderboardDTO `json:"leaderboards,omitempty"`
}

type slotResultDTO struct {
	TeamNumber    int    `json:"teamNumber"`
	CategoryID    string `json:"categoryId,omitempty"`
	CategoryName  string `json:"categoryName"`
	OurScore      int    `json:"ourScore"`
	OpponentScore int    `json:"opponentScore"`
	Result        string `json:"result"`
}

type eventDTO struct {
	ID        string          `json:"id"`
	TeamID    string          `json:"teamId"`
	Date      string          `json:"date"`
	Opponent  string          `json:"opponent,omitempty"`
	IsHome    *bool           `json:"isHome,omitempty"`
	EventType string          `json:"eventType"`
	Location  string          `json:"location,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Played    bool            `json:"played"`
	Results   []slotResultDTO `json:"results,omitempty"`
}

type matchStatsDTO struct {
	TotalGames            int `json:"totalGames"`
	TotalMinutes          int `json:"totalMinutes"`
	TotalGoals            int `json:"totalGoals"`
	TotalAssists          int `json:"totalAssists"`
	TotalSaves            int `json:"totalSaves"`
	YellowCards           int `json:"yellowCards"`
	RedCards              int `json:"redCards"`
	CaptainGames          int `json:"captainGames"`
	PlayerOfTheMatchCount int `json:"playerOfTheMatchCount"`
}

type rankedEntryDTO struct {
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	SquadNumber int    `json:"squadNumber"`
	Value       int    `json:"value"`
}

type metricLeaderboardDTO struct {
	Metric  string           `json:"metric"`
	Entries []rankedEntryDTO `json:"entries"`
}

type myTeamDashboardDTO struct {
	Team         teamDTO                `json:"team"`
	Summary      resultSummaryDTO       `json:"summary"`
	Categories   []categorySummaryDTO   `json:"categories"`
	Leaderboards []metricLeaderboardDTO `json:"leaderboards"`
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:       v.ID,
		ClubID:   v.ClubID,
		Name:     v.Name,
		AgeGroup: v.AgeGroup,
		Season:   v.Season,
	}
}

func resultSummaryToDTO(ctx context.Context, v stats.ResultSummary) resultSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.resultSummaryToDTO")
	defer span.End()

	return resultSummaryDTO{
		Wins:            v.Wins,
		Draws:           v.Draws,
		Losses:          v.Losses,
		TotalGames:      v.TotalGames,
		GoalsFor:        v.GoalsFor,
		GoalsAgainst:    v.GoalsAgainst,
		GoalDifference:  v.GoalDifference,
		WinRatePct:      v.WinRatePct,
		AvgGoalsPerGame: v.AvgGoalsPerGame,
		Points:          v.Points,
	}
}

func categorySummariesToDTO(ctx context.Context, items []stats.CategorySummary) []categorySummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.categorySummariesToDTO")
	defer span.End()

	out := make([]categorySummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, categorySummaryDTO{
			CategoryID:   item.CategoryID,
			CategoryName: item.CategoryName,
			Summary:      resultSummaryToDTO(ctx, item.Summary),
		})
	}
	return out
}

func leaderboardsToDTO(ctx context.Context, boards []usecase.MetricLeaderboard) []metricLeaderboardDTO {
	ctx, span := startSpan(ctx, "httpapi.leaderboardsToDTO")
	defer span.End()

	out := make([]metricLeaderboardDTO, 0, len(boards))
	for _, board := range boards {
		out = append(out, metricLeaderboardDTO{
			Metric:  string(board.Metric),
			Entries: rankedEntriesToDTO(ctx, board.Entries),
		})
	}
	return out
}

func rankedEntriesToDTO(ctx context.Context, entries []stats.RankedEntry) []rankedEntryDTO {
	ctx, span := startSpan(ctx, "httpapi.rankedEntriesToDTO")
	defer span.End()

	out := make([]rankedEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, rankedEntryDTO{
			PlayerID:    entry.PlayerID,
			PlayerName:  entry.PlayerName,
			SquadNumber: entry.SquadNumber,
			Value:       entry.Value,
		})
	}
	return out
}

func eventToDTO(ctx context.Context, v usecase.EventWithResults) eventDTO {
	ctx, span := startSpan(ctx, "httpapi.eventToDTO")
	defer span.End()

	results := make([]slotResultDTO, 0, len(v.Results))
	for _, slot := range v.Results {
		results = append(results, slotResultDTO{
			TeamNumber:    slot.TeamNumber,
			CategoryID:    slot.CategoryID,
			CategoryName:  slot.CategoryName,
			OurScore:      slot.OurScore,
			OpponentScore: slot.OpponentScore,
			Result:        string(slot.Result),
		})
	}

	return eventDTO{
		ID:        v.Event.ID,
		TeamID:    v.Event.TeamID,
		Date:      v.Event.Date.UTC().Format(time.RFC3339),
		Opponent:  v.Event.Opponent,
		IsHome:    v.Event.IsHome,
		EventType: event.NormalizeType(v.Event.EventType),
		Location:  v.Event.Location,
		Notes:     v.Event.Notes,
		Played:    v.Event.HasResult(),
		Results:   results,
	}
}

func matchStatsToDTO(ctx context.Context, v player.MatchStats) matchStatsDTO {
	ctx, span := startSpan(ctx, "httpapi.matchStatsToDTO")
	defer span.End()

	return matchStatsDTO{
		TotalGames:            v.TotalGames,
		TotalMinutes:          v.TotalMinutes,
		TotalGoals:            v.TotalGoals,
		TotalAssists:          v.TotalAssists,
		TotalSaves:            v.TotalSaves,
		YellowCards:           v.YellowCards,
		RedCards:              v.RedCards,
		CaptainGames:          v.CaptainGames,
		PlayerOfTheMatchCount: v.PlayerOfTheMatchCount,
	}
}
