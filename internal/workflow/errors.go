package workflow

import (
	"errors"
	"funding_approval_system/internal/ledger"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidVote     = errors.New("invalid vote")
	ErrRequestNotFound = ledger.ErrRequestNotFound
	ErrNotBoardMember  = errors.New("voter is not a board member")
	// ErrDisplayUpdate means the ledger was updated but the request message was not.
	ErrDisplayUpdate = errors.New("failed to update request message")
)
