package commands

import (
	"context"
	"funding_approval_system/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Command handles a bot command and, for conversations, the replies that follow it.
type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable
}

// Submitter files a finished request for review.
type Submitter interface {
	SubmitRequest(ctx context.Context, request models.NewRequest) (*models.Request, error)
}
