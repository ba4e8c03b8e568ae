package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/analytics", handler.GetTeamAnalytics)
	mux.HandleFunc("GET /v1/teams/{teamID}/events", handler.ListTeamEvents)
	mux.HandleFunc("GET /v1/teams/{teamID}/players/totals", handler.GetTeamPlayerTotals)
	mux.HandleFunc("GET /v1/teams/{teamID}/leaderboards", handler.GetTeamLeaderboards)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/dashboard/my-team", RequireAuth(verifier, http.HandlerFunc(handler.GetMyTeamDashboard)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/warm-analytics", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWarmAnalyticsJob)))
}
