package commands

import (
	"context"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	tgbot "funding_approval_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const cancelCommandName = "cancel"

type cancelCommand struct {
	store  ledger.Store
	logger *zap.SugaredLogger
}

func NewCancelCommand(store ledger.Store, logger *zap.SugaredLogger) Command {
	return &cancelCommand{
		store:  store,
		logger: logger,
	}
}

func (c *cancelCommand) CanHandle(command string) bool {
	return command == cancelCommandName
}

func (c *cancelCommand) Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	user.ResetState()
	if _, err := c.store.SaveMember(ctx, user); err != nil {
		c.logger.Errorw("failed to update user", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	message := tgbotapi.NewMessage(chatID, "Den påbegynte søknaden er slettet. Bruk /apply for å starte på nytt.")
	message.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return []tgbotapi.Chattable{message}
}
