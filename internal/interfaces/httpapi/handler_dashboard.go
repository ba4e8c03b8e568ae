package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/clubdeck/clubstats/internal/usecase"
)

func (h *Handler) GetMyTeamDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeamDashboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))
	if teamID == "" {
		teamID = principal.DefaultTeamID
	}

	dashboard, err := h.dashboardService.GetMyTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get my-team dashboard failed", "user_id", principal.UserID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, myTeamDashboardDTO{
		Team:         teamToDTO(ctx, dashboard.Team),
		Summary:      resultSummaryToDTO(ctx, dashboard.Summary),
		Categories:   categorySummariesToDTO(ctx, dashboard.Categories),
		Leaderboards: leaderboardsToDTO(ctx, dashboard.Leaderboards),
	})
}
