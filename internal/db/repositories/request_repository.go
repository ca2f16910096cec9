package repositories

import (
	"context"
	"funding_approval_system/internal/db/models"
	"time"

	"github.com/go-pg/pg/v10"
)

type requestRepository struct {
	repository
}

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) (*models.Request, error)
	GetOne(ctx context.Context, requestID int64) (*models.Request, error)
	// MarkApproved sets approved_at only if it is still empty. It returns pg.ErrNoRows
	// when no row was changed.
	MarkApproved(ctx context.Context, requestID int64, approvedAt time.Time) (*models.Request, error)
	SetMessageRef(ctx context.Context, requestID int64, channelID, messageID string) error
	GetManyPending(ctx context.Context) ([]*models.Request, error)
	GetManyByRequester(ctx context.Context, requesterID string) ([]*models.Request, error)
}

func NewRequestRepository(db *pg.DB) RequestRepository {
	return &requestRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *requestRepository) Create(ctx context.Context, request *models.Request) (*models.Request, error) {
	_, err := r.db.ModelContext(ctx, request).Returning("*").Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *requestRepository) GetOne(ctx context.Context, requestID int64) (*models.Request, error) {
	request := &models.Request{}

	err := r.db.ModelContext(ctx, request).
		Where("id = ?", requestID).
		Select()

	return request, err
}

func (r *requestRepository) MarkApproved(ctx context.Context, requestID int64, approvedAt time.Time) (*models.Request, error) {
	request := &models.Request{}

	result, err := r.db.ModelContext(ctx, request).
		Set("approved_at = ?", approvedAt).
		Where("id = ?", requestID).
		Where("approved_at IS NULL").
		Returning("*").
		Update()
	if err != nil {
		return nil, err
	}

	if result.RowsAffected() == 0 {
		return nil, pg.ErrNoRows
	}

	return request, nil
}

func (r *requestRepository) SetMessageRef(ctx context.Context, requestID int64, channelID, messageID string) error {
	_, err := r.db.ModelContext(ctx, (*models.Request)(nil)).
		Set("channel_id = ?", channelID).
		Set("message_id = ?", messageID).
		Where("id = ?", requestID).
		Update()

	return err
}

func (r *requestRepository) GetManyPending(ctx context.Context) ([]*models.Request, error) {
	requests := make([]*models.Request, 0)

	err := r.db.ModelContext(ctx, &requests).
		Where("approved_at IS NULL").
		OrderExpr("created_at ASC").
		Select()

	return requests, err
}

func (r *requestRepository) GetManyByRequester(ctx context.Context, requesterID string) ([]*models.Request, error) {
	requests := make([]*models.Request, 0)

	err := r.db.ModelContext(ctx, &requests).
		Where("requester_id = ?", requesterID).
		OrderExpr("created_at DESC").
		Select()

	return requests, err
}
