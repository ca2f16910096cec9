package commands

import (
	"context"
	"fmt"
	"funding_approval_system/internal"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	tgbot "funding_approval_system/internal/tg_bot/extension"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const myRequestsCommandName = "my_requests"

type myRequestsCommand struct {
	store  ledger.Store
	logger *zap.SugaredLogger
}

func NewMyRequestsCommand(store ledger.Store, logger *zap.SugaredLogger) Command {
	return &myRequestsCommand{
		store:  store,
		logger: logger,
	}
}

func (c *myRequestsCommand) CanHandle(command string) bool {
	return command == myRequestsCommandName
}

func (c *myRequestsCommand) Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	finishCommand(ctx, c.store, user, c.logger)

	requests, err := c.store.ListByRequester(ctx, strconv.FormatInt(user.TelegramID, 10))
	if err != nil {
		c.logger.Errorw("failed to get requests", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(requests) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Du har ikke sendt inn noen søknader ennå. Bruk /apply for å sende inn en.")}
	}

	messageText := ""
	for _, request := range requests {
		messageText += describeRequest(request)
		if request.IsApproved() {
			messageText += fmt.Sprintf("Status: ✅ Godkjent %s\n", internal.Format(*request.ApprovedAt))
		} else {
			messageText += "Status: ⏳ Venter på styret\n"
		}
		messageText += fmt.Sprintln()
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, messageText)}
}
