package commands

import (
	"context"
	"fmt"
	"funding_approval_system/internal"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	tgbot "funding_approval_system/internal/tg_bot/extension"
	"funding_approval_system/internal/voting"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pendingRequestsCommandName = "pending_requests"

type pendingRequestsCommand struct {
	store  ledger.Store
	logger *zap.SugaredLogger
}

func NewPendingRequestsCommand(store ledger.Store, logger *zap.SugaredLogger) Command {
	return &pendingRequestsCommand{
		store:  store,
		logger: logger,
	}
}

func (c *pendingRequestsCommand) CanHandle(command string) bool {
	return command == pendingRequestsCommandName
}

func (c *pendingRequestsCommand) Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	finishCommand(ctx, c.store, user, c.logger)

	requests, err := c.store.ListPending(ctx)
	if err != nil {
		c.logger.Errorw("failed to get requests", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(requests) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Ingen søknader venter på behandling.")}
	}

	messageText := ""
	for _, request := range requests {
		messageText += describeRequest(request)

		votes, err := c.store.GetVotes(ctx, request.ID)
		if err != nil {
			c.logger.Errorw("failed to get votes", "error", err, "requestID", request.ID)
		} else {
			tally := voting.Compute(votes)
			messageText += fmt.Sprintf("Stemmer: Ja: %d | Nei: %d\n", tally.YesCount(), tally.NoCount())
		}

		if request.HasMessage() {
			messageText += fmt.Sprintf("Lenke: %s\n", tgbot.MessageLink(request.ChannelID, request.MessageID))
		}
		messageText += fmt.Sprintln()
	}

	message := tgbotapi.NewMessage(chatID, messageText)
	message.DisableWebPagePreview = true
	return []tgbotapi.Chattable{message}
}

func describeRequest(request models.Request) string {
	text := ""
	text += fmt.Sprintf("🎫 %s\n", request.Title)
	text += fmt.Sprintf("Gruppe: %s\n", request.GroupTag.Label())
	text += fmt.Sprintf("Beløp: %s kr\n", request.Amount)
	text += fmt.Sprintf("Sendt inn: %s\n", internal.Format(request.CreatedAt))
	return text
}

// finishCommand clears the conversation state for commands that answer in one message.
func finishCommand(ctx context.Context, store ledger.Store, user *models.User, logger *zap.SugaredLogger) {
	user.ResetState()
	if _, err := store.SaveMember(ctx, user); err != nil {
		logger.Errorw("failed to update user", "error", err)
	}
}
