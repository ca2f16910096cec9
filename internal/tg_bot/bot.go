package tgbot

import (
	"context"
	"funding_approval_system/configs"
	"funding_approval_system/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type updatesSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type bot struct {
	api     BotAPI
	updates updatesSource
	handler handlers.CommandHandler
	config  configs.Bot
}

type Bot interface {
	// Start handles updates one at a time until ctx is cancelled.
	Start(ctx context.Context, logger *zap.SugaredLogger)
}

func NewBot(api *tgbotapi.BotAPI, handler handlers.CommandHandler, config configs.Bot) Bot {
	return &bot{
		api:     api,
		updates: api,
		handler: handler,
		config:  config,
	}
}

func NewBotAPI(config configs.Bot, debug bool) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, err
	}

	api.Debug = debug
	return api, nil
}

func (b *bot) Start(ctx context.Context, logger *zap.SugaredLogger) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.UpdateTimeout

	updates := b.updates.GetUpdatesChan(u)
	logger.Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.updates.StopReceivingUpdates()
			logger.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handle(ctx, update, logger)
		}
	}
}

func (b *bot) handle(ctx context.Context, update tgbotapi.Update, logger *zap.SugaredLogger) {
	// Telegram keeps the button spinning until the query is answered.
	if update.CallbackQuery != nil {
		if _, err := b.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			logger.Errorw("failed to answer callback query", "error", err)
		}
	}

	for _, message := range b.handler.Handle(ctx, update) {
		if _, err := b.api.Request(message); err != nil {
			logger.Errorw("failed to send message", "error", err)
		}
	}
}
