package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/clubdeck/clubstats/internal/domain/team"
)

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"

	defaultWarmWorkers = 4
	maxWarmWorkers     = 32
)

type WarmInput struct {
	// ClubID narrows the run to one club's teams; empty warms everything.
	ClubID     string
	MaxWorkers int
}

type WarmResult struct {
	TeamCount    int              `json:"team_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	Tasks        []WarmTaskResult `json:"tasks"`
}

type WarmTaskResult struct {
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	Status     string `json:"status"`
	Games      int    `json:"games"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// WarmService recomputes analytics for many teams at once so the first
// dashboard hit after a result is entered does not pay the snapshot
// fetch. Scheduled via the internal jobs route.
type WarmService struct {
	teamRepo  team.Repository
	analytics *AnalyticsService
	now       func() time.Time
}

func NewWarmService(teamRepo team.Repository, analytics *AnalyticsService) *WarmService {
	return &WarmService{
		teamRepo:  teamRepo,
		analytics: analytics,
		now:       time.Now,
	}
}

func (s *WarmService) WarmAnalytics(ctx context.Context, input WarmInput) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmService.WarmAnalytics")
	defer span.End()

	teams, err := s.listTargets(ctx, input.ClubID)
	if err != nil {
		return WarmResult{}, err
	}

	workers := input.MaxWorkers
	if workers <= 0 {
		workers = defaultWarmWorkers
	}
	if workers > maxWarmWorkers {
		workers = maxWarmWorkers
	}
	if workers > len(teams) && len(teams) > 0 {
		workers = len(teams)
	}

	result := WarmResult{
		TeamCount:   len(teams),
		WorkerCount: workers,
		Tasks:       make([]WarmTaskResult, len(teams)),
	}
	if len(teams) == 0 {
		return result, nil
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create warm worker pool: %w", err)
	}
	defer workerPool.Release()

	var wg sync.WaitGroup
	for i, target := range teams {
		i, target := i, target
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()
			result.Tasks[i] = s.warmOne(ctx, target)
		})
		if submitErr != nil {
			result.Tasks[i] = WarmTaskResult{
				TeamID:   target.ID,
				TeamName: target.Name,
				Status:   warmStatusFailed,
				Message:  submitErr.Error(),
			}
			wg.Done()
		}
	}
	wg.Wait()

	for _, task := range result.Tasks {
		switch task.Status {
		case warmStatusSuccess:
			result.SuccessCount++
		default:
			result.FailedCount++
		}
	}

	return result, nil
}

func (s *WarmService) warmOne(ctx context.Context, target team.Team) WarmTaskResult {
	started := s.now()
	analytics, err := s.analytics.Refresh(ctx, target.ID)
	task := WarmTaskResult{
		TeamID:     target.ID,
		TeamName:   target.Name,
		DurationMs: s.now().Sub(started).Milliseconds(),
	}
	if err != nil {
		task.Status = warmStatusFailed
		task.Message = err.Error()
		return task
	}

	task.Status = warmStatusSuccess
	task.Games = analytics.Overall.TotalGames
	return task
}

func (s *WarmService) listTargets(ctx context.Context, clubID string) ([]team.Team, error) {
	clubID = strings.TrimSpace(clubID)

	var (
		teams []team.Team
		err   error
	)
	if clubID != "" {
		teams, err = s.teamRepo.ListByClub(ctx, clubID)
	} else {
		teams, err = s.teamRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list teams for warm run: %w", err)
	}

	sort.SliceStable(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}
