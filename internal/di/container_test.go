package di

import (
	"context"
	"funding_approval_system/configs"
	"funding_approval_system/internal/db/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStore_SQLite(t *testing.T) {
	store, closer, err := NewStore(configs.DB{Driver: configs.DBDriverSQLite}, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer closer()

	request, err := store.CreateRequest(context.Background(), models.NewRequest{
		RequesterID: "42",
		Title:       "Sofa",
		GroupTag:    models.GroupTagWebkom,
		Amount:      "1200",
	})
	require.NoError(t, err)
	assert.NotZero(t, request.ID)
}

func TestNewStore_UnknownDriver(t *testing.T) {
	_, _, err := NewStore(configs.DB{Driver: "mysql"}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewLogger_WithoutLoki(t *testing.T) {
	logger := NewLogger(configs.Logger{AppName: "funding-bot"})
	assert.NotNil(t, logger)
}
