package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/clubdeck/clubstats/internal/usecase"
)

type warmAnalyticsJobRequest struct {
	ClubID     string `json:"club_id" validate:"omitempty,max=100"`
	MaxWorkers int    `json:"max_workers" validate:"omitempty,min=1,max=32"`
}

// RunWarmAnalyticsJob recomputes cached analytics for every target
// team. The job queue posts here on a schedule; an empty body warms
// all clubs with default concurrency.
func (h *Handler) RunWarmAnalyticsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmAnalyticsJob")
	defer span.End()

	var req warmAnalyticsJobRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.warmService.WarmAnalytics(ctx, usecase.WarmInput{
		ClubID:     req.ClubID,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "warm analytics job failed", "club_id", req.ClubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "warm analytics job finished",
		"club_id", req.ClubID,
		"teams", result.TeamCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
