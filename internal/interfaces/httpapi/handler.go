package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/clubdeck/clubstats/internal/usecase"
)

type Handler struct {
	teamService        *usecase.TeamService
	analyticsService   *usecase.AnalyticsService
	eventService       *usecase.EventService
	playerStatsService *usecase.PlayerStatsService
	dashboardService   *usecase.DashboardService
	warmService        *usecase.WarmService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	analyticsService *usecase.AnalyticsService,
	eventService *usecase.EventService,
	playerStatsService *usecase.PlayerStatsService,
	dashboardService *usecase.DashboardService,
	warmService *usecase.WarmService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		teamService:        teamService,
		analyticsService:   analyticsService,
		eventService:       eventService,
		playerStatsService: playerStatsService,
		dashboardService:   dashboardService,
		warmService:        warmService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryInt parses an optional integer query parameter; absent means 0,
// which services treat as "use the default".
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %q must be an integer", usecase.ErrInvalidInput, name)
	}

	return value, nil
}
