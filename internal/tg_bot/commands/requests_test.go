package commands

import (
	"context"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedRequests(t *testing.T, store ledger.Store) (pending, approved *models.Request) {
	ctx := context.Background()

	pending, err := store.CreateRequest(ctx, models.NewRequest{Title: "Workshop", GroupTag: models.GroupTagWebkom, Amount: "2500", RequesterID: "111"})
	require.NoError(t, err)
	require.NoError(t, store.SetMessageRef(ctx, pending.ID, "-100123", "77"))
	require.NoError(t, store.UpsertVote(ctx, models.Vote{VoterID: "222", RequestID: pending.ID, IsYes: true}))

	approved, err = store.CreateRequest(ctx, models.NewRequest{Title: "Julebord", GroupTag: models.GroupTagBedkom, Amount: "10000", RequesterID: "111"})
	require.NoError(t, err)
	_, err = store.MarkApproved(ctx, approved.ID)
	require.NoError(t, err)

	return pending, approved
}

func TestPendingRequests(t *testing.T) {
	store := ledger.NewMemoryStore()
	seedRequests(t, store)
	user := newMember(t, store)
	user.TelegramState.LastCommand = pendingRequestsCommandName

	text := textOf(t, NewPendingRequestsCommand(store, zap.NewNop().Sugar()).Handle(context.Background(), "pending_requests", user, 111))

	assert.Contains(t, text, "🎫 Workshop")
	assert.Contains(t, text, "Stemmer: Ja: 1 | Nei: 0")
	assert.Contains(t, text, "https://t.me/c/123/77")
	assert.NotContains(t, text, "Julebord")
	assert.Empty(t, user.TelegramState.LastCommand)
}

func TestPendingRequests_Empty(t *testing.T) {
	store := ledger.NewMemoryStore()
	user := newMember(t, store)

	text := textOf(t, NewPendingRequestsCommand(store, zap.NewNop().Sugar()).Handle(context.Background(), "pending_requests", user, 111))

	assert.Equal(t, "Ingen søknader venter på behandling.", text)
}

func TestMyRequests(t *testing.T) {
	store := ledger.NewMemoryStore()
	seedRequests(t, store)
	_, err := store.CreateRequest(context.Background(), models.NewRequest{Title: "Annen", GroupTag: models.GroupTagOther, Amount: "1", RequesterID: "999"})
	require.NoError(t, err)
	user := newMember(t, store)

	text := textOf(t, NewMyRequestsCommand(store, zap.NewNop().Sugar()).Handle(context.Background(), "my_requests", user, 111))

	assert.Contains(t, text, "🎫 Workshop")
	assert.Contains(t, text, "Status: ⏳ Venter på styret")
	assert.Contains(t, text, "🎫 Julebord")
	assert.Contains(t, text, "Status: ✅ Godkjent")
	assert.NotContains(t, text, "Annen")
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	user := newMember(t, store)
	user.TempRequest.Title = "Utkast"
	user.TelegramState = models.TelegramState{LastCommand: applyCommandName, LastCommandState: waitingForAmountState}
	_, err := store.SaveMember(ctx, user)
	require.NoError(t, err)

	text := textOf(t, NewCancelCommand(store, zap.NewNop().Sugar()).Handle(ctx, "cancel", user, 111))

	assert.Contains(t, text, "/apply")
	saved, err := store.GetMember(ctx, 111)
	require.NoError(t, err)
	assert.Empty(t, saved.TempRequest.Title)
	assert.Empty(t, saved.TelegramState.LastCommandState)
}
