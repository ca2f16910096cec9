package main

import (
	"context"
	"errors"
	"funding_approval_system/configs"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/ledger"
	"funding_approval_system/internal/workflow"
	mock_workflow "funding_approval_system/internal/workflow/mocks"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeResyncer struct {
	synced int
	err    error
	calls  int
}

func (f *fakeResyncer) Resync(context.Context) (int, error) {
	f.calls++
	return f.synced, f.err
}

func TestRunSync_ReturnsSyncedCount(t *testing.T) {
	syncer := &fakeResyncer{synced: 3}

	synced := runSync(context.Background(), syncer, zap.NewNop().Sugar())

	assert.Equal(t, 3, synced)
	assert.Equal(t, 1, syncer.calls)
}

func TestRunSync_PartialFailure(t *testing.T) {
	syncer := &fakeResyncer{synced: 1, err: errors.New("telegram unavailable")}

	synced := runSync(context.Background(), syncer, zap.NewNop().Sugar())

	assert.Equal(t, 1, synced)
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := newScheduler(context.Background(), configs.Sync{Schedule: "not a cron"}, &fakeResyncer{}, zap.NewNop().Sugar())
	assert.Error(t, err)
}

func TestNewScheduler_ValidSchedule(t *testing.T) {
	s, err := newScheduler(context.Background(), configs.Sync{Schedule: "*/15 * * * *"}, &fakeResyncer{}, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Len(t, s.Jobs(), 1)
}

func TestRunSync_RepairsPendingRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := ledger.NewMemoryStore()
	request, err := store.CreateRequest(ctx, models.NewRequest{
		Title:       "Pizza",
		GroupTag:    models.GroupTagWebkom,
		Amount:      "500",
		RequesterID: "7",
	})
	require.NoError(t, err)
	require.NoError(t, store.SetMessageRef(ctx, request.ID, "requests", "100"))

	chat := mock_workflow.NewMockChat(ctrl)
	chat.EXPECT().Mention(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, userID string) string {
		return userID
	}).AnyTimes()
	chat.EXPECT().UpdateMessage(gomock.Any(), workflow.MessageRef{ChannelID: "requests", MessageID: "100"}, gomock.Any()).Return(nil)

	orchestrator := workflow.NewOrchestrator(
		store,
		chat,
		configs.App{ApprovalThreshold: 8, BoardChannelID: "board", RequestsChannelID: "requests"},
		zap.NewNop().Sugar(),
		prometheus.NewRegistry(),
	)

	synced := runSync(ctx, orchestrator, zap.NewNop().Sugar())

	assert.Equal(t, 1, synced)
}
