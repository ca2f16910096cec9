// Package ledger is the durable record of requests, votes and known members.
package ledger

import (
	"context"
	"errors"
	"funding_approval_system/internal/db/models"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrMemberNotFound  = errors.New("member not found")
	// ErrAlreadyApproved is returned by MarkApproved when another writer latched the
	// request first.
	ErrAlreadyApproved = errors.New("request already approved")
)

// Store is implemented by every ledger backend. Votes are unique per (voter, request);
// UpsertVote replaces the choice of an existing vote.
type Store interface {
	GetRequest(ctx context.Context, requestID int64) (*models.Request, error)
	CreateRequest(ctx context.Context, request models.NewRequest) (*models.Request, error)
	// MarkApproved sets the approval timestamp only if it is still unset.
	MarkApproved(ctx context.Context, requestID int64) (*models.Request, error)
	SetMessageRef(ctx context.Context, requestID int64, channelID, messageID string) error
	ListPending(ctx context.Context) ([]models.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]models.Request, error)

	GetVotes(ctx context.Context, requestID int64) ([]models.Vote, error)
	UpsertVote(ctx context.Context, vote models.Vote) error
	DeleteVote(ctx context.Context, voterID string, requestID int64) error

	SaveMember(ctx context.Context, user *models.User) (*models.User, error)
	GetMember(ctx context.Context, telegramID int64) (*models.User, error)
}
