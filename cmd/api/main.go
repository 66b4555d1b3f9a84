package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"clip-share/internal/adapters/eventbroker/nats"
	"clip-share/internal/adapters/eventbroker/noop"
	chirouter "clip-share/internal/adapters/handlers/http/chi"
	linkhandler "clip-share/internal/adapters/handlers/http/chi/v1/link"
	videohandler "clip-share/internal/adapters/handlers/http/chi/v1/video"
	"clip-share/internal/adapters/media/ffmpeg"
	"clip-share/internal/adapters/repository/postgres"
	"clip-share/internal/adapters/storage/disk"
	"clip-share/internal/config"
	"clip-share/internal/core/port"
	"clip-share/internal/core/service/cleanup"
	linkservice "clip-share/internal/core/service/link"
	videoservice "clip-share/internal/core/service/video"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	store, err := disk.NewStore(cfg.Media.StoreRoot)
	if err != nil {
		logger.Error("failed to init media store", "error", err)
		os.Exit(1)
	}

	//media transforms
	transformer := ffmpeg.NewTransformer(
		ffmpeg.WithFFmpegPath(cfg.Media.FFmpegPath),
		ffmpeg.WithFFprobePath(cfg.Media.FFprobePath),
	)
	if err := transformer.VerifyInstalled(ctx); err != nil {
		logger.Error("media tooling missing", "error", err)
		os.Exit(1)
	}

	//lifecycle events
	var events port.EventPublisher
	if cfg.NATS.URL != "" {
		publisher, pubErr := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if pubErr != nil {
			logger.Error("failed to init nats publisher", "error", pubErr)
			os.Exit(1)
		}
		events = publisher
		logger.Info("nats publisher initialized")
	} else {
		events = noop.NewPublisher()
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)
	clock := port.ClockFunc(time.Now)

	videoService := videoservice.NewVideoService(unitOfWork, store, transformer, events, clock, cfg.Media, logger)
	linkService := linkservice.NewLinkService(unitOfWork, clock, cfg.Link)
	cleanupService := cleanup.NewCleanupService(unitOfWork, logger)

	//http
	videoHandler := videohandler.NewVideoHandlerV1(videoService, logger)
	linkHandler := linkhandler.NewLinkHandlerV1(linkService, logger)

	router := chirouter.NewRouter(logger, cfg.Auth, videoHandler, linkHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Link.CleanupEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			err := service.DeleteExpiredLinks(ctx, time.Now())
			if err != nil {
				logger.Error("failed to cleanup expired links", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
