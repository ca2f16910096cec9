package fbhandlers

import (
	"context"
	"errors"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	"funding_approval_system/internal/tg_bot/commands"
	tgbot "funding_approval_system/internal/tg_bot/extension"
	"funding_approval_system/internal/tg_bot/handlers"
	"funding_approval_system/internal/workflow"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Voter records vote clicks.
type Voter interface {
	HandleVote(ctx context.Context, event workflow.VoteEvent) (workflow.VoteResult, error)
}

type fundingBotCommandHandler struct {
	store  ledger.Store
	voter  Voter
	logger *zap.SugaredLogger

	commands []commands.Command
}

func NewFundingBotCommandHandler(
	store ledger.Store,
	voter Voter,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) handlers.CommandHandler {
	return &fundingBotCommandHandler{
		store:    store,
		voter:    voter,
		logger:   logger,
		commands: commands,
	}
}

func (h *fundingBotCommandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	callbackQuery := update.CallbackQuery

	if message == nil && callbackQuery == nil {
		h.logger.Warn("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	var (
		chatID       int64
		telegramUser *tgbotapi.User
	)

	if message != nil {
		chatID = message.Chat.ID
		telegramUser = message.From
	} else {
		telegramUser = callbackQuery.From
		if callbackQuery.Message != nil {
			chatID = callbackQuery.Message.Chat.ID
		}
	}

	if telegramUser == nil {
		h.logger.Warn("received update without sender")
		return []tgbotapi.Chattable{}
	}

	user, errMessage := h.saveUser(ctx, telegramUser, chatID)
	if errMessage != nil {
		return []tgbotapi.Chattable{errMessage}
	}

	if callbackQuery != nil {
		h.logger.Infow("received callback query", "data", callbackQuery.Data, "userID", telegramUser.ID)
		if tgbot.IsVoteData(callbackQuery.Data) {
			return h.handleVote(ctx, callbackQuery)
		}
		h.logger.Warnw("received unknown callback query", "data", callbackQuery.Data)
		return []tgbotapi.Chattable{}
	}

	// Conversations only happen in private chats.
	if telegramUser.ID != chatID {
		return []tgbotapi.Chattable{}
	}

	if message.IsCommand() {
		h.logger.Infow("received command", "command", message.Command())
		return h.tryToHandleCommand(ctx, message.Command(), user, chatID)
	} else if user.TelegramState.LastCommand != "" {
		h.logger.Infow("received subcommand", "command", user.TelegramState.LastCommand)
		return h.tryToHandleSubCommand(ctx, user.TelegramState.LastCommand, message.Text, user, chatID)
	}

	h.logger.Warn("received unknown message")
	return []tgbotapi.Chattable{}
}

// saveUser keeps the members directory current so voters and requesters can be
// mentioned by name.
func (h *fundingBotCommandHandler) saveUser(ctx context.Context, telegramUser *tgbotapi.User, chatID int64) (*models.User, tgbotapi.Chattable) {
	user, err := h.store.GetMember(ctx, telegramUser.ID)
	if err != nil && !errors.Is(err, ledger.ErrMemberNotFound) {
		h.logger.Errorw("failed to get user", "error", err)
		return nil, tgbot.DefaultErrorMessage(chatID)
	}

	if user == nil {
		user = &models.User{TelegramID: telegramUser.ID}
	}

	name := displayName(telegramUser)
	if user.ID != 0 && user.Name == name && user.TelegramNickname == telegramUser.UserName {
		return user, nil
	}

	user.Name = name
	user.TelegramNickname = telegramUser.UserName

	user, err = h.store.SaveMember(ctx, user)
	if err != nil {
		h.logger.Errorw("failed to save user", "error", err)
		return nil, tgbot.DefaultErrorMessage(chatID)
	}

	return user, nil
}

func displayName(telegramUser *tgbotapi.User) string {
	var parts []string

	if telegramUser.FirstName != "" {
		parts = append(parts, telegramUser.FirstName)
	}

	if telegramUser.LastName != "" {
		parts = append(parts, telegramUser.LastName)
	}

	return strings.Join(parts, " ")
}

func (h *fundingBotCommandHandler) handleVote(ctx context.Context, callbackQuery *tgbotapi.CallbackQuery) []tgbotapi.Chattable {
	choice, requestID, err := tgbot.ParseVoteData(callbackQuery.Data)
	if err != nil {
		h.logger.Warnw("received malformed vote", "error", err)
		return []tgbotapi.Chattable{}
	}

	event := workflow.VoteEvent{
		RequestID: requestID,
		VoterID:   tgbot.UserID(callbackQuery.From),
		Choice:    choice,
		Prior:     tgbot.DecodeMessage(callbackQuery.Message),
	}
	if callbackQuery.Message != nil {
		event.Message = workflow.MessageRef{
			ChannelID: strconv.FormatInt(callbackQuery.Message.Chat.ID, 10),
			MessageID: strconv.Itoa(callbackQuery.Message.MessageID),
		}
	}

	result, err := h.voter.HandleVote(ctx, event)
	switch {
	case errors.Is(err, workflow.ErrNotBoardMember):
	case errors.Is(err, workflow.ErrDisplayUpdate):
		h.logger.Warnw("vote recorded but message not updated", "error", err, "requestID", requestID)
	case err != nil:
		h.logger.Errorw("failed to handle vote", "error", err, "requestID", requestID)
	default:
		h.logger.Infow("vote handled", "requestID", requestID, "action", result.Action, "approved", result.Approved)
	}

	return []tgbotapi.Chattable{}
}

func (h *fundingBotCommandHandler) tryToHandleCommand(ctx context.Context, command string, user *models.User, chatID int64) []tgbotapi.Chattable {
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			user.ResetState()
			user.TelegramState.LastCommand = command

			if _, err := h.store.SaveMember(ctx, user); err != nil {
				h.logger.Errorw("failed to update user", "error", err)
			}

			return handler.Handle(ctx, command, user, chatID)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{}
}

func (h *fundingBotCommandHandler) tryToHandleSubCommand(ctx context.Context, command, subCommand string, user *models.User, chatID int64) []tgbotapi.Chattable {
	command = strings.Split(command, ":")[0]

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			responseMessage := handler.Handle(ctx, subCommand, user, chatID)
			if responseMessage == nil {
				h.logger.Errorw("failed to handle subcommand", "command", command)
				break
			}

			return responseMessage
		}
	}

	h.logger.Errorf("received unknown subcommand for command: %s", command)
	return []tgbotapi.Chattable{}
}
