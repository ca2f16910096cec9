package tgbot

import (
	"context"
	"errors"
	"fmt"
	"funding_approval_system/internal/display"
	"funding_approval_system/internal/ledger"
	"funding_approval_system/internal/tg_bot/extension"
	"funding_approval_system/internal/workflow"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=chat.go -destination=mocks/mock_bot_api.go -package=mock_tgbot

// BotAPI is the part of *tgbotapi.BotAPI the bot uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

const messageNotModified = "message is not modified"

type chat struct {
	api    BotAPI
	store  ledger.Store
	logger *zap.SugaredLogger
}

// NewChat exposes Telegram to the workflow. Channel and user ids are Telegram chat ids
// in decimal form.
func NewChat(api BotAPI, store ledger.Store, logger *zap.SugaredLogger) workflow.Chat {
	return &chat{
		api:    api,
		store:  store,
		logger: logger,
	}
}

func (c *chat) PostMessage(_ context.Context, channelID string, content workflow.Content) (workflow.MessageRef, error) {
	chatID, err := extension.ParseChatID(channelID)
	if err != nil {
		return workflow.MessageRef{}, err
	}

	text, keyboard := render(content)
	message := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		message.ReplyMarkup = *keyboard
	}

	if content.ReplyTo != nil {
		replyTo, err := strconv.Atoi(content.ReplyTo.MessageID)
		if err != nil {
			return workflow.MessageRef{}, fmt.Errorf("invalid message id %q: %w", content.ReplyTo.MessageID, err)
		}
		message.BaseChat.ReplyToMessageID = replyTo
	}

	sent, err := c.api.Send(message)
	if err != nil {
		return workflow.MessageRef{}, err
	}

	return workflow.MessageRef{ChannelID: channelID, MessageID: strconv.Itoa(sent.MessageID)}, nil
}

func (c *chat) UpdateMessage(_ context.Context, ref workflow.MessageRef, content workflow.Content) error {
	chatID, err := extension.ParseChatID(ref.ChannelID)
	if err != nil {
		return err
	}
	messageID, err := strconv.Atoi(ref.MessageID)
	if err != nil {
		return fmt.Errorf("invalid message id %q: %w", ref.MessageID, err)
	}

	text, keyboard := render(content)
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ReplyMarkup = keyboard

	_, err = c.api.Request(edit)
	if err != nil && strings.Contains(err.Error(), messageNotModified) {
		c.logger.Debugw("request message already up to date", "chatID", chatID, "messageID", messageID)
		return nil
	}
	return err
}

// PostEphemeral sends text as a direct message. Telegram has no per-user visibility in
// groups, so channelID is not used.
func (c *chat) PostEphemeral(_ context.Context, _ string, userID, text string) error {
	chatID, err := extension.ParseChatID(userID)
	if err != nil {
		return err
	}

	_, err = c.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (c *chat) IsMember(_ context.Context, channelID, userID string) (bool, error) {
	chatID, err := extension.ParseChatID(channelID)
	if err != nil {
		return false, err
	}
	telegramID, err := extension.ParseChatID(userID)
	if err != nil {
		return false, err
	}

	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: telegramID},
	})
	if err != nil {
		return false, err
	}

	switch member.Status {
	case "creator", "administrator", "member":
		return true, nil
	case "restricted":
		return member.IsMember, nil
	default:
		return false, nil
	}
}

// Mention prefers the member's nickname and falls back to the raw id.
func (c *chat) Mention(ctx context.Context, userID string) string {
	telegramID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return userID
	}

	member, err := c.store.GetMember(ctx, telegramID)
	if err != nil {
		if !errors.Is(err, ledger.ErrMemberNotFound) {
			c.logger.Warnw("failed to get member", "error", err, "userID", userID)
		}
		return userID
	}

	if mention := member.Mention(); mention != "" {
		return mention
	}
	return userID
}

func render(content workflow.Content) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(content.Segments) == 0 {
		return content.Text, nil
	}

	text, actions := display.Encode(content.Segments)
	if actions == nil {
		return text, nil
	}

	keyboard := extension.VoteKeyboard(actions.Text)
	return text, &keyboard
}
