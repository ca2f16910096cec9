package repositories

import (
	"context"
	"funding_approval_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Upsert(ctx context.Context, vote *models.Vote) (*models.Vote, error)
	Delete(ctx context.Context, voterID string, requestID int64) error
	GetManyByRequest(ctx context.Context, requestID int64) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Upsert(ctx context.Context, vote *models.Vote) (*models.Vote, error) {
	_, err := r.db.ModelContext(ctx, vote).
		OnConflict("(voter_id, request_id) DO UPDATE").
		Set("is_yes = EXCLUDED.is_yes").
		Returning("*").
		Insert()
	if err != nil {
		return nil, err
	}

	return vote, nil
}

func (r *voteRepository) Delete(ctx context.Context, voterID string, requestID int64) error {
	_, err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		Where("voter_id = ?", voterID).
		Where("request_id = ?", requestID).
		Delete()

	return err
}

func (r *voteRepository) GetManyByRequest(ctx context.Context, requestID int64) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.ModelContext(ctx, &votes).
		Where("request_id = ?", requestID).
		OrderExpr("created_at ASC, id ASC").
		Select()

	return votes, err
}
