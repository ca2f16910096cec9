package ledger

import (
	"context"
	"errors"
	"fmt"
	"funding_approval_system/internal/db/models"
	"funding_approval_system/internal/db/repositories"
	"time"

	"github.com/go-pg/pg/v10"
)

type postgresStore struct {
	requests repositories.RequestRepository
	votes    repositories.VoteRepository
	users    repositories.UserRepository
	now      func() time.Time
}

func NewPostgresStore(
	requests repositories.RequestRepository,
	votes repositories.VoteRepository,
	users repositories.UserRepository,
) Store {
	return &postgresStore{
		requests: requests,
		votes:    votes,
		users:    users,
		now:      time.Now,
	}
}

func (s *postgresStore) GetRequest(ctx context.Context, requestID int64) (*models.Request, error) {
	request, err := s.requests.GetOne(ctx, requestID)
	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRequestNotFound, requestID)
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *postgresStore) CreateRequest(ctx context.Context, request models.NewRequest) (*models.Request, error) {
	return s.requests.Create(ctx, &models.Request{
		Title:       request.Title,
		GroupTag:    request.GroupTag,
		Amount:      request.Amount,
		Description: request.Description,
		RequesterID: request.RequesterID,
	})
}

func (s *postgresStore) MarkApproved(ctx context.Context, requestID int64) (*models.Request, error) {
	request, err := s.requests.MarkApproved(ctx, requestID, s.now())
	if err == nil {
		return request, nil
	}
	if !errors.Is(err, pg.ErrNoRows) {
		return nil, err
	}

	// Nothing changed: either the request is gone or it was already approved.
	if _, err := s.GetRequest(ctx, requestID); err != nil {
		return nil, err
	}
	return nil, ErrAlreadyApproved
}

func (s *postgresStore) SetMessageRef(ctx context.Context, requestID int64, channelID, messageID string) error {
	return s.requests.SetMessageRef(ctx, requestID, channelID, messageID)
}

func (s *postgresStore) ListPending(ctx context.Context) ([]models.Request, error) {
	requests, err := s.requests.GetManyPending(ctx)
	if err != nil {
		return nil, err
	}
	return derefAll(requests), nil
}

func (s *postgresStore) ListByRequester(ctx context.Context, requesterID string) ([]models.Request, error) {
	requests, err := s.requests.GetManyByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return derefAll(requests), nil
}

func (s *postgresStore) GetVotes(ctx context.Context, requestID int64) ([]models.Vote, error) {
	votes, err := s.votes.GetManyByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return derefAll(votes), nil
}

func (s *postgresStore) UpsertVote(ctx context.Context, vote models.Vote) error {
	vote.ID = 0
	_, err := s.votes.Upsert(ctx, &vote)
	return err
}

func (s *postgresStore) DeleteVote(ctx context.Context, voterID string, requestID int64) error {
	return s.votes.Delete(ctx, voterID, requestID)
}

// SaveMember upserts by Telegram id. The row id is left to the database.
func (s *postgresStore) SaveMember(ctx context.Context, user *models.User) (*models.User, error) {
	record := *user
	record.ID = 0
	return s.users.Upsert(ctx, &record)
}

func (s *postgresStore) GetMember(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := s.users.GetOneByTelegramID(ctx, telegramID)
	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrMemberNotFound, telegramID)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func derefAll[T any](items []*T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, *item)
		}
	}
	return result
}
