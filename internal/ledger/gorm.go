package ledger

import (
	"context"
	"errors"
	"fmt"
	"funding_approval_system/internal/db/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore keeps the ledger in a gorm database. It is used with SQLite for local runs.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{
		db:  db,
		now: time.Now,
	}
}

func (s *gormStore) GetRequest(ctx context.Context, requestID int64) (*models.Request, error) {
	request := &models.Request{}

	err := s.db.WithContext(ctx).First(request, requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrRequestNotFound, requestID)
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *gormStore) CreateRequest(ctx context.Context, request models.NewRequest) (*models.Request, error) {
	created := &models.Request{
		Title:       request.Title,
		GroupTag:    request.GroupTag,
		Amount:      request.Amount,
		Description: request.Description,
		RequesterID: request.RequesterID,
	}

	if err := s.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (s *gormStore) MarkApproved(ctx context.Context, requestID int64) (*models.Request, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("id = ? AND approved_at IS NULL", requestID).
		Update("approved_at", s.now())
	if result.Error != nil {
		return nil, result.Error
	}

	request, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyApproved
	}
	return request, nil
}

func (s *gormStore) SetMessageRef(ctx context.Context, requestID int64, channelID, messageID string) error {
	return s.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("id = ?", requestID).
		Updates(map[string]any{"channel_id": channelID, "message_id": messageID}).
		Error
}

func (s *gormStore) ListPending(ctx context.Context) ([]models.Request, error) {
	var requests []models.Request

	err := s.db.WithContext(ctx).
		Where("approved_at IS NULL").
		Order("created_at ASC, id ASC").
		Find(&requests).Error

	return requests, err
}

func (s *gormStore) ListByRequester(ctx context.Context, requesterID string) ([]models.Request, error) {
	var requests []models.Request

	err := s.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error

	return requests, err
}

func (s *gormStore) GetVotes(ctx context.Context, requestID int64) ([]models.Vote, error) {
	var votes []models.Vote

	err := s.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC, id ASC").
		Find(&votes).Error

	return votes, err
}

// UpsertVote matches on (voter, request). The row id of an existing vote is kept.
func (s *gormStore) UpsertVote(ctx context.Context, vote models.Vote) error {
	vote.ID = 0
	vote.CreatedAt = time.Time{}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "voter_id"}, {Name: "request_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_yes"}),
		}).
		Create(&vote).Error
}

func (s *gormStore) DeleteVote(ctx context.Context, voterID string, requestID int64) error {
	return s.db.WithContext(ctx).
		Where("voter_id = ? AND request_id = ?", voterID, requestID).
		Delete(&models.Vote{}).Error
}

func (s *gormStore) SaveMember(ctx context.Context, user *models.User) (*models.User, error) {
	record := *user
	record.ID = 0

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "telegram_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "telegram_nickname", "temp_request", "telegram_state", "updated_at",
			}),
		}).
		Create(&record).Error
	if err != nil {
		return nil, err
	}

	return s.GetMember(ctx, user.TelegramID)
}

func (s *gormStore) GetMember(ctx context.Context, telegramID int64) (*models.User, error) {
	user := &models.User{}

	err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrMemberNotFound, telegramID)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
