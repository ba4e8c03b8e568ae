package httpapi

import "net/http"

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) GetTeamAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamAnalytics")
	defer span.End()

	teamID := r.PathValue("teamID")
	top, err := queryInt(r, "top")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	analytics, err := h.analyticsService.GetTeamAnalytics(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team analytics failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	boards, err := h.playerStatsService.GetLeaderboards(ctx, teamID, top)
	if err != nil {
		h.logger.WarnContext(ctx, "get team leaderboards failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamAnalyticsDTO{
		Overall:      resultSummaryToDTO(ctx, analytics.Overall),
		Categories:   categorySummariesToDTO(ctx, analytics.Categories),
		Leaderboards: leaderboardsToDTO(ctx, boards),
	})
}
