package httpapi

import (
	"net/http"
	"strings"

	"github.com/clubdeck/clubstats/internal/domain/stats"
)

func (h *Handler) GetTeamPlayerTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPlayerTotals")
	defer span.End()

	teamID := r.PathValue("teamID")
	totals, err := h.playerStatsService.GetTeamTotals(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team player totals failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchStatsToDTO(ctx, totals))
}

// GetTeamLeaderboards serves a single board when ?metric= is given and
// every tracked board otherwise.
func (h *Handler) GetTeamLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLeaderboards")
	defer span.End()

	teamID := r.PathValue("teamID")
	top, err := queryInt(r, "top")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	metric := strings.TrimSpace(r.URL.Query().Get("metric"))
	if metric != "" {
		entries, err := h.playerStatsService.GetLeaderboard(ctx, teamID, stats.Metric(metric), top)
		if err != nil {
			h.logger.WarnContext(ctx, "get leaderboard failed", "team_id", teamID, "metric", metric, "error", err)
			writeError(ctx, w, err)
			return
		}

		writeSuccess(ctx, w, http.StatusOK, []metricLeaderboardDTO{{
			Metric:  metric,
			Entries: rankedEntriesToDTO(ctx, entries),
		}})
		return
	}

	boards, err := h.playerStatsService.GetLeaderboards(ctx, teamID, top)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboards failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardsToDTO(ctx, boards))
}
