package fbhandlers

import (
	"context"
	"errors"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/display"
	"funding_approval_system/internal/ledger"
	"funding_approval_system/internal/tg_bot/commands"
	tgbot "funding_approval_system/internal/tg_bot/extension"
	"funding_approval_system/internal/voting"
	"funding_approval_system/internal/workflow"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVoter struct {
	events []workflow.VoteEvent
	err    error
}

func (v *fakeVoter) HandleVote(_ context.Context, event workflow.VoteEvent) (workflow.VoteResult, error) {
	v.events = append(v.events, event)
	return workflow.VoteResult{}, v.err
}

type fakeSubmitter struct{}

func (fakeSubmitter) SubmitRequest(context.Context, models.NewRequest) (*models.Request, error) {
	return &models.Request{ID: 1}, nil
}

func newTestHandler(voter Voter) (*fundingBotCommandHandler, ledger.Store) {
	store := ledger.NewMemoryStore()
	logger := zap.NewNop().Sugar()
	handler := NewFundingBotCommandHandler(store, voter, logger, []commands.Command{
		commands.NewStartCommand(store, logger),
		commands.NewApplyRequestCommand(store, fakeSubmitter{}, logger),
		commands.NewCancelCommand(store, logger),
	})
	return handler.(*fundingBotCommandHandler), store
}

var ola = &tgbotapi.User{ID: 111, FirstName: "Ola", LastName: "Nordmann", UserName: "ola"}

func commandMessage(command string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      ola,
		Chat:      &tgbotapi.Chat{ID: ola.ID, Type: "private"},
		Text:      "/" + command,
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(command) + 1}},
	}
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 2,
		From:      ola,
		Chat:      &tgbotapi.Chat{ID: ola.ID, Type: "private"},
		Text:      text,
	}
}

func requestMessage() *tgbotapi.Message {
	segments := display.Build(&models.Request{
		ID:          15,
		Title:       "Julebord 2025",
		GroupTag:    models.GroupTagBedkom,
		Amount:      "10000",
		Description: "Fancy julebord",
		RequesterID: "222",
	}, nil)
	text, actions := display.Encode(segments)
	keyboard := tgbot.VoteKeyboard(actions.Text)

	return &tgbotapi.Message{
		MessageID:   77,
		Chat:        &tgbotapi.Chat{ID: -1002, Type: "supergroup"},
		Text:        text,
		ReplyMarkup: &keyboard,
	}
}

func TestHandle_VoteCallback(t *testing.T) {
	voter := &fakeVoter{}
	handler, store := newTestHandler(voter)

	messages := handler.Handle(context.Background(), tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb", From: ola, Message: requestMessage(), Data: "vote_no:15"},
	})

	assert.Empty(t, messages)
	require.Len(t, voter.events, 1)
	event := voter.events[0]
	assert.Equal(t, int64(15), event.RequestID)
	assert.Equal(t, "111", event.VoterID)
	assert.Equal(t, voting.ChoiceNo, event.Choice)
	assert.Equal(t, workflow.MessageRef{ChannelID: "-1002", MessageID: "77"}, event.Message)
	assert.Equal(t, 6, len(event.Prior))
	assert.True(t, display.Has(event.Prior, display.RoleActions))

	member, err := store.GetMember(context.Background(), 111)
	require.NoError(t, err)
	assert.Equal(t, "Ola Nordmann", member.Name)
	assert.Equal(t, "@ola", member.Mention())
}

func TestHandle_VoteCallbackErrorsAreSwallowed(t *testing.T) {
	for _, err := range []error{workflow.ErrNotBoardMember, workflow.ErrDisplayUpdate, errors.New("db down")} {
		handler, _ := newTestHandler(&fakeVoter{err: err})

		messages := handler.Handle(context.Background(), tgbotapi.Update{
			CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb", From: ola, Message: requestMessage(), Data: "vote_yes:15"},
		})

		assert.Empty(t, messages)
	}
}

func TestHandle_MalformedVoteIgnored(t *testing.T) {
	voter := &fakeVoter{}
	handler, _ := newTestHandler(voter)

	handler.Handle(context.Background(), tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb", From: ola, Message: requestMessage(), Data: "vote_yes:abc"},
	})

	assert.Empty(t, voter.events)
}

func TestHandle_StartCommand(t *testing.T) {
	handler, _ := newTestHandler(&fakeVoter{})

	messages := handler.Handle(context.Background(), tgbotapi.Update{Message: commandMessage("start")})

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].(tgbotapi.MessageConfig).Text, "/apply")
}

func TestHandle_ConversationContinues(t *testing.T) {
	handler, store := newTestHandler(&fakeVoter{})
	ctx := context.Background()

	handler.Handle(ctx, tgbotapi.Update{Message: commandMessage("apply")})
	messages := handler.Handle(ctx, tgbotapi.Update{Message: textMessage("Julebord 2025")})

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].(tgbotapi.MessageConfig).Text, "gruppe")

	member, err := store.GetMember(ctx, 111)
	require.NoError(t, err)
	assert.Equal(t, "apply", member.TelegramState.LastCommand)
	assert.Equal(t, "Julebord 2025", member.TempRequest.Title)
}

func TestHandle_CommandResetsConversation(t *testing.T) {
	handler, store := newTestHandler(&fakeVoter{})
	ctx := context.Background()

	handler.Handle(ctx, tgbotapi.Update{Message: commandMessage("apply")})
	handler.Handle(ctx, tgbotapi.Update{Message: textMessage("Julebord 2025")})
	handler.Handle(ctx, tgbotapi.Update{Message: commandMessage("cancel")})

	member, err := store.GetMember(ctx, 111)
	require.NoError(t, err)
	assert.Empty(t, member.TelegramState.LastCommand)
	assert.Empty(t, member.TempRequest.Title)
}

func TestHandle_GroupMessagesIgnored(t *testing.T) {
	handler, _ := newTestHandler(&fakeVoter{})
	message := textMessage("hei")
	message.Chat = &tgbotapi.Chat{ID: -1002, Type: "supergroup"}

	assert.Empty(t, handler.Handle(context.Background(), tgbotapi.Update{Message: message}))
}

func TestHandle_UnknownUpdate(t *testing.T) {
	handler, _ := newTestHandler(&fakeVoter{})

	assert.Empty(t, handler.Handle(context.Background(), tgbotapi.Update{}))
}
