package commands

import (
	"context"
	"errors"
	"fmt"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	tgbot "funding_approval_system/internal/tg_bot/extension"
	"funding_approval_system/internal/workflow"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	applyCommandName = "apply"

	waitingForTitleState       = "waiting_for_title"
	waitingForGroupState       = "waiting_for_group"
	waitingForAmountState      = "waiting_for_amount"
	waitingForDescriptionState = "waiting_for_description"
	waitingForConfirmState     = "waiting_for_confirm"

	groupButtonsPerRow = 3
)

var (
	skipDescription = "Hopp over"

	confirmYes = "Ja, send inn"
	confirmNo  = "Nei, start på nytt"
)

type applyRequestCommand struct {
	store     ledger.Store
	submitter Submitter
	logger    *zap.SugaredLogger
}

func NewApplyRequestCommand(store ledger.Store, submitter Submitter, logger *zap.SugaredLogger) Command {
	return &applyRequestCommand{
		store:     store,
		submitter: submitter,
		logger:    logger,
	}
}

func (c *applyRequestCommand) CanHandle(command string) bool {
	return command == applyCommandName
}

func (c *applyRequestCommand) Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	text = strings.TrimSpace(text)

	switch user.TelegramState.LastCommandState {
	case "":
		return c.handleApplyCommand(ctx, user, chatID)
	case waitingForTitleState:
		return c.handleWaitingForTitleState(ctx, text, user, chatID)
	case waitingForGroupState:
		return c.handleWaitingForGroupState(ctx, text, user, chatID)
	case waitingForAmountState:
		return c.handleWaitingForAmountState(ctx, text, user, chatID)
	case waitingForDescriptionState:
		return c.handleWaitingForDescriptionState(ctx, text, user, chatID)
	case waitingForConfirmState:
		return c.handleWaitingForConfirmState(ctx, text, user, chatID)
	default:
		c.logger.Errorf("user has unknown state: %s", user.TelegramState.LastCommandState)
		return nil
	}
}

func (c *applyRequestCommand) handleApplyCommand(ctx context.Context, user *models.User, chatID int64) []tgbotapi.Chattable {
	user.TempRequest = models.NewRequest{RequesterID: strconv.FormatInt(user.TelegramID, 10)}
	user.TelegramState = models.TelegramState{LastCommand: applyCommandName, LastCommandState: waitingForTitleState}
	if err := c.updateUser(ctx, user); err != nil {
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	message := tgbotapi.NewMessage(chatID, "Hva søker du støtte til? Skriv en kort tittel.")
	message.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return []tgbotapi.Chattable{message}
}

func (c *applyRequestCommand) handleWaitingForTitleState(ctx context.Context, title string, user *models.User, chatID int64) []tgbotapi.Chattable {
	if title == "" {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Tittelen kan ikke være tom.")}
	}

	user.TempRequest.Title = title
	user.TelegramState.LastCommandState = waitingForGroupState
	if err := c.updateUser(ctx, user); err != nil {
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	message := tgbotapi.NewMessage(chatID, "Hvilken gruppe søker du for?")
	message.ReplyMarkup = groupKeyboard()
	return []tgbotapi.Chattable{message}
}

func (c *applyRequestCommand) handleWaitingForGroupState(ctx context.Context, group string, user *models.User, chatID int64) []tgbotapi.Chattable {
	groupTag, ok := models.ParseGroupTag(group)
	if !ok {
		c.logger.Warnf("user has unknown group: %s", group)
		message := tgbotapi.NewMessage(chatID, fmt.Sprintf("Ukjent gruppe: %s. Velg en gruppe fra listen.", group))
		message.ReplyMarkup = groupKeyboard()
		return []tgbotapi.Chattable{message}
	}

	user.TempRequest.GroupTag = groupTag
	user.TelegramState.LastCommandState = waitingForAmountState
	if err := c.updateUser(ctx, user); err != nil {
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	message := tgbotapi.NewMessage(chatID, "Hvor mye søker du om (i kroner)?")
	message.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return []tgbotapi.Chattable{message}
}

func (c *applyRequestCommand) handleWaitingForAmountState(ctx context.Context, amount string, user *models.User, chatID int64) []tgbotapi.Chattable {
	if amount == "" {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Beløpet kan ikke være tomt.")}
	}

	user.TempRequest.Amount = amount
	user.TelegramState.LastCommandState = waitingForDescriptionState
	if err := c.updateUser(ctx, user); err != nil {
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	message := tgbotapi.NewMessage(chatID, "Beskriv hva pengene skal brukes til. Jo mer detaljer, jo lettere er det for styret å vurdere søknaden.")
	message.ReplyMarkup = tgbotapi.NewOneTimeReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(skipDescription)),
	)
	return []tgbotapi.Chattable{message}
}

func (c *applyRequestCommand) handleWaitingForDescriptionState(ctx context.Context, description string, user *models.User, chatID int64) []tgbotapi.Chattable {
	if description == skipDescription {
		description = ""
	}

	user.TempRequest.Description = description
	user.TelegramState.LastCommandState = waitingForConfirmState
	if err := c.updateUser(ctx, user); err != nil {
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	messageText := ""
	messageText += fmt.Sprintf("Tittel: %s\n", user.TempRequest.Title)
	messageText += fmt.Sprintf("Gruppe: %s\n", user.TempRequest.GroupTag.Label())
	messageText += fmt.Sprintf("Beløp: %s kr\n", user.TempRequest.Amount)
	if description != "" {
		messageText += fmt.Sprintf("Beskrivelse: %s\n", description)
	}
	messageText += fmt.Sprintln()
	messageText += "Stemmer alt? Skal søknaden sendes til styret?"

	message := tgbotapi.NewMessage(chatID, messageText)
	message.ReplyMarkup = tgbotapi.NewOneTimeReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(confirmYes),
			tgbotapi.NewKeyboardButton(confirmNo),
		),
	)
	return []tgbotapi.Chattable{message}
}

func (c *applyRequestCommand) handleWaitingForConfirmState(ctx context.Context, confirmation string, user *models.User, chatID int64) []tgbotapi.Chattable {
	switch confirmation {
	case confirmNo:
		user.TelegramState.LastCommandState = ""
		return c.handleApplyCommand(ctx, user, chatID)
	case confirmYes:
	default:
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, fmt.Sprintf("Svar «%s» eller «%s».", confirmYes, confirmNo))}
	}

	request := user.TempRequest
	request.RequesterID = strconv.FormatInt(user.TelegramID, 10)

	_, err := c.submitter.SubmitRequest(ctx, request)
	if errors.Is(err, workflow.ErrInvalidRequest) {
		c.logger.Warnw("user submitted invalid request", "error", err)
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Søknaden mangler informasjon. Bruk /apply for å prøve igjen.")}
	}
	if err != nil {
		c.logger.Errorw("failed to submit request", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}
	c.logger.Info("request submitted")

	user.ResetState()
	_ = c.updateUser(ctx, user)

	// The requester gets a confirmation from the workflow, this only clears the keyboard.
	message := tgbotapi.NewMessage(chatID, "👍")
	message.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return []tgbotapi.Chattable{message}
}

func (c *applyRequestCommand) updateUser(ctx context.Context, user *models.User) error {
	_, err := c.store.SaveMember(ctx, user)
	if err != nil {
		c.logger.Errorw("failed to update user", "error", err)
	}
	return err
}

func groupKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton

	for _, tag := range models.GroupTags {
		row = append(row, tgbotapi.NewKeyboardButton(tag.Label()))
		if len(row) == groupButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewOneTimeReplyKeyboard(rows...)
}
