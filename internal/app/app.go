package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/clubdeck/clubstats/external/jobqueue"
	"github.com/clubdeck/clubstats/internal/config"
	"github.com/clubdeck/clubstats/internal/domain/category"
	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/player"
	"github.com/clubdeck/clubstats/internal/domain/selection"
	"github.com/clubdeck/clubstats/internal/domain/team"
	"github.com/clubdeck/clubstats/internal/infrastructure/account/gatekeeper"
	"github.com/clubdeck/clubstats/internal/infrastructure/repository/memory"
	"github.com/clubdeck/clubstats/internal/infrastructure/repository/postgres"
	"github.com/clubdeck/clubstats/internal/interfaces/httpapi"
	"github.com/clubdeck/clubstats/internal/platform/cache"
	"github.com/clubdeck/clubstats/internal/platform/resilience"
	"github.com/clubdeck/clubstats/internal/usecase"
)

type repositories struct {
	teams      team.Repository
	events     event.Repository
	selections selection.Repository
	categories category.Repository
	players    player.Repository
}

// App bundles the HTTP server with the background collaborators the
// entrypoint needs to drive.
type App struct {
	Server *http.Server

	cfg         config.Config
	logger      *slog.Logger
	db          *sqlx.DB
	warmService *usecase.WarmService
	publisher   *jobqueue.QStashPublisher
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var db *sqlx.DB
	var repos repositories
	if strings.TrimSpace(cfg.DBURL) != "" {
		opened, err := openDatabase(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = opened
		repos = repositories{
			teams:      postgres.NewTeamRepository(db),
			events:     postgres.NewEventRepository(db),
			selections: postgres.NewSelectionRepository(db),
			categories: postgres.NewCategoryRepository(db),
			players:    postgres.NewPlayerRepository(db),
		}
		logger.Info("repositories backed by postgres", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		repos = repositories{
			teams:      memory.NewTeamRepository(memory.SeedTeams()),
			events:     memory.NewEventRepository(memory.SeedEvents()),
			selections: memory.NewSelectionRepository(memory.SeedSelections()),
			categories: memory.NewCategoryRepository(memory.SeedCategories()),
			players:    memory.NewPlayerRepository(memory.SeedPlayers()),
		}
		logger.Info("repositories backed by in-memory seed data")
	}

	store := cache.NewDisabledStore()
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	analyticsSvc := usecase.NewAnalyticsService(repos.teams, repos.events, repos.selections, repos.categories, store)
	teamSvc := usecase.NewTeamService(repos.teams)
	eventSvc := usecase.NewEventService(repos.events, analyticsSvc)
	playerStatsSvc := usecase.NewPlayerStatsService(repos.teams, repos.players)
	dashboardSvc := usecase.NewDashboardService(repos.teams, analyticsSvc, playerStatsSvc)
	warmSvc := usecase.NewWarmService(repos.teams, analyticsSvc)

	verifier := gatekeeper.NewClient(gatekeeper.Config{
		BaseURL:        cfg.GatekeeperBaseURL,
		IntrospectPath: cfg.GatekeeperIntrospectPath,
		Timeout:        cfg.GatekeeperTimeout,
		CacheTTL:       cfg.GatekeeperCacheTTL,
		CacheEntries:   cfg.GatekeeperCacheEntries,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GatekeeperCircuitEnabled,
			FailureThreshold: cfg.GatekeeperCircuitFailureCount,
			OpenTimeout:      cfg.GatekeeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GatekeeperCircuitHalfOpenMaxReq,
		},
	}, logger)

	var publisher *jobqueue.QStashPublisher
	if cfg.QStashEnabled {
		publisher = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	handler := httpapi.NewHandler(teamSvc, analyticsSvc, eventSvc, playerStatsSvc, dashboardSvc, warmSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:      server,
		cfg:         cfg,
		logger:      logger,
		db:          db,
		warmService: warmSvc,
		publisher:   publisher,
	}, nil
}

// WarmAnalyticsAtStartup fills the analytics cache once the server is
// up, then hands periodic refreshes to the job queue when configured.
func (a *App) WarmAnalyticsAtStartup(ctx context.Context) {
	result, err := a.warmService.WarmAnalytics(ctx, usecase.WarmInput{MaxWorkers: a.cfg.WarmWorkers})
	if err != nil {
		a.logger.WarnContext(ctx, "startup analytics warm failed", "error", err)
	} else {
		a.logger.InfoContext(ctx, "startup analytics warm finished",
			"team_count", result.TeamCount,
			"success_count", result.SuccessCount,
			"failed_count", result.FailedCount,
			"worker_count", result.WorkerCount,
		)
	}

	if a.publisher == nil {
		return
	}
	if err := a.publisher.EnqueueWarmAnalytics(ctx, "", a.cfg.WarmScheduleDelay); err != nil {
		a.logger.WarnContext(ctx, "schedule warm-analytics job failed", "error", err)
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
