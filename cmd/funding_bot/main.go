package main

import (
	"context"
	"funding_approval_system/configs"
	"funding_approval_system/internal/di"
	"funding_approval_system/internal/healthcheck"
	"funding_approval_system/internal/ledger"
	tgbot "funding_approval_system/internal/tg_bot"
	"funding_approval_system/internal/tg_bot/commands"
	fbhandlers "funding_approval_system/internal/tg_bot/handlers/funding_bot"
	"funding_approval_system/internal/workflow"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadFundingBotConfig()
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

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	orchestrator := workflow.NewOrchestrator(store, tgbot.NewChat(api, store, logger), config.App, logger, registry)

	go func() {
		if err := healthcheck.NewServer(config.HealthCheck, registry, logger).Run(ctx); err != nil {
			logger.Errorw("health check server failed", "error", err)
		}
	}()

	logger.Info("starting bot")
	tgbot.NewBot(
		api,
		fbhandlers.NewFundingBotCommandHandler(store, orchestrator, logger, newCommands(store, orchestrator, logger)),
		config.Bot,
	).Start(ctx, logger)
}

func newCommands(store ledger.Store, submitter commands.Submitter, logger *zap.SugaredLogger) []commands.Command {
	return []commands.Command{
		commands.NewStartCommand(store, logger),
		commands.NewApplyRequestCommand(store, submitter, logger),
		commands.NewCancelCommand(store, logger),
		commands.NewPendingRequestsCommand(store, logger),
		commands.NewMyRequestsCommand(store, logger),
	}
}
