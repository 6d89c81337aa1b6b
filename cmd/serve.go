package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-learning-planner/internal/config"
	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
	"github.com/KasumiMercury/primind-learning-planner/internal/handler"
	"github.com/KasumiMercury/primind-learning-planner/internal/health"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/lock"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/planrecorder"
	"github.com/KasumiMercury/primind-learning-planner/internal/infra/repository"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/metrics"
	"github.com/KasumiMercury/primind-learning-planner/internal/observability/middleware"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/analytics"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/feedback"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/plan"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/request"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/reschedule"
	"github.com/KasumiMercury/primind-learning-planner/internal/service/uow"
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the planner HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "migrate the database schema before serving")

	return cmd
}

func serve(parent context.Context, migrate bool) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg, shutdown, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer shutdown()

	if err := config.ValidateForServe(cfg); err != nil {
		return err
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		return fmt.Errorf("initialize HTTP metrics: %w", err)
	}

	plannerMetrics, err := metrics.NewPlannerMetrics()
	if err != nil {
		return fmt.Errorf("initialize planner metrics: %w", err)
	}

	// Plan result recorder (InfluxDB for local, BigQuery for gcloud)
	resultRecorder, err := planrecorder.NewRecorder(ctx, planrecorder.LoadConfig())
	if err != nil {
		return fmt.Errorf("initialize plan result recorder: %w", err)
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close plan result recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := repository.Open(ctx, cfg.Database.DSN, repository.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := repository.Close(db); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if migrate {
		if err := repository.Migrate(ctx, db); err != nil {
			return err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	redisClient, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
	}

	var locker domain.UserLocker
	if redisClient != nil {
		locker = lock.NewRedisLocker(redisClient, lock.Config{
			TTL:     cfg.Redis.LockTTL,
			MaxWait: cfg.Redis.LockMaxWait,
		})
	} else {
		slog.Warn("REDIS_ADDR not set, per-user locking disabled")
	}

	optimizerClient, err := optimizer.NewClient(optimizer.Config{
		BaseURL:        cfg.Optimizer.URL,
		ConnectTimeout: cfg.Optimizer.ConnectTimeout,
		ReadTimeout:    cfg.Optimizer.ReadTimeout,
	})
	if err != nil {
		return err
	}

	loc := cfg.Location()
	taskRepo := repository.NewTaskRepository(db, loc)
	costProfileRepo := repository.NewCostProfileRepository(db)
	planRepo := repository.NewPlanRepository(db, loc)
	constraintRepo := repository.NewConstraintRepository(db, loc)
	runner := uow.NewRunner(repository.NewTransactor(db), locker)

	analyticsService := analytics.NewService(taskRepo, costProfileRepo, planRepo, runner, plannerMetrics)
	builder := request.NewBuilder(taskRepo, constraintRepo, analyticsService, request.Defaults{
		BreakMinutes:       cfg.Scheduling.BreakMinutes,
		DeadlineBufferDays: cfg.Scheduling.DeadlineBufferDays,
	})
	applier := plan.NewApplier()

	planService := plan.NewService(planRepo, builder, optimizerClient, applier, runner, resultRecorder, plannerMetrics)
	rescheduleService := reschedule.NewService(
		planRepo,
		taskRepo,
		builder,
		optimizerClient,
		applier,
		analyticsService,
		runner,
		resultRecorder,
		plannerMetrics,
	)
	feedbackService := feedback.NewService(planRepo, analyticsService, runner)

	planHandler := handler.NewPlanHandler(planService, loc)
	unitHandler := handler.NewUnitHandler(rescheduleService, feedbackService, loc)
	costProfileHandler := handler.NewCostProfileHandler(analyticsService)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-learning-planner/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(Version).
		Register("database", sqlDB.PingContext).
		Register("redis", health.RedisProbe(redisClient))
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	handler.Register(r.Group("/api/v1"), planHandler, unitHandler, costProfileHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", loc.String()),
			slog.String("optimizer_url", cfg.Optimizer.URL),
			slog.Bool("user_lock", locker != nil),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}

		slog.Info("server exited properly")
		return nil

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server exited: %w", err)
	}
}

// connectRedis returns nil without error when Redis is not configured.
func connectRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(client); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(client); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil, err
	}

	slog.Info("redis connected",
		slog.String("addr", cfg.Addr),
	)

	return client, nil
}
