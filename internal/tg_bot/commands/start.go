package commands

import (
	"context"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	tgbot "funding_approval_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const startCommandName = "start"

type startCommand struct {
	store  ledger.Store
	logger *zap.SugaredLogger
}

func NewStartCommand(store ledger.Store, logger *zap.SugaredLogger) Command {
	return &startCommand{
		store:  store,
		logger: logger,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	user.ResetState()
	if _, err := c.store.SaveMember(ctx, user); err != nil {
		c.logger.Errorw("failed to update user", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	text = `
Hei! Jeg tar imot søknader om støtte og sender dem til styret for godkjenning.

/apply - send inn en ny søknad.
/my_requests - se dine søknader og status.
/pending_requests - se søknader som venter på behandling.
/cancel - avbryt en påbegynt søknad.
`
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}
