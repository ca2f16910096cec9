package main

import (
	"context"
	"funding_approval_system/configs"
	"funding_approval_system/internal/di"
	tgbot "funding_approval_system/internal/tg_bot"
	"funding_approval_system/internal/workflow"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type resyncer interface {
	Resync(ctx context.Context) (int, error)
}

func main() {
	config, err := configs.LoadDisplaySyncServiceConfig()
	logger := di.NewLogger(config.Logger)
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	store, closeStore, err := di.NewStore(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer closeStore()
	logger.Info("db started")

	api, err := tgbot.NewBotAPI(config.Bot, config.App.IsDevEnvironment())
	if err != nil {
		logger.Fatalw("failed to create bot api", "error", err)
	}

	orchestrator := workflow.NewOrchestrator(store, tgbot.NewChat(api, store, logger), config.App, logger, prometheus.NewRegistry())

	s, err := newScheduler(ctx, config.Sync, orchestrator, logger)
	if err != nil {
		logger.Fatalw("failed to schedule display sync", "error", err)
	}

	// Catch up on anything missed while the service was down.
	runSync(ctx, orchestrator, logger)

	s.StartAsync()
	logger.Infow("display sync scheduled", "schedule", config.Sync.Schedule)

	<-ctx.Done()
	s.Stop()
	logger.Info("display sync stopped")
}

func newScheduler(ctx context.Context, config configs.Sync, syncer resyncer, logger *zap.SugaredLogger) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err := s.Cron(config.Schedule).Do(func() {
		runSync(ctx, syncer, logger)
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func runSync(ctx context.Context, syncer resyncer, logger *zap.SugaredLogger) int {
	logger.Info("syncing pending request messages")

	synced, err := syncer.Resync(ctx)
	if err != nil {
		logger.Errorw("failed to sync some requests", "error", err, "synced", synced)
		return synced
	}

	logger.Infow("pending request messages synced", "synced", synced)
	return synced
}
