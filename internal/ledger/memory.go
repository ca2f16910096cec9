package ledger

import (
	"context"
	"fmt"
	"funding_approval_system/internal/db/models"
	"sort"
	"sync"
	"time"
)

type voteKey struct {
	voterID   string
	requestID int64
}

type memoryStore struct {
	mu sync.RWMutex

	requests map[int64]models.Request
	votes    map[voteKey]models.Vote
	users    map[int64]models.User

	lastRequestID int64
	lastVoteID    int64
	lastUserID    int64
	now           func() time.Time
}

// NewMemoryStore returns a process-local ledger. Nothing survives a restart.
func NewMemoryStore() Store {
	return &memoryStore{
		requests: make(map[int64]models.Request),
		votes:    make(map[voteKey]models.Vote),
		users:    make(map[int64]models.User),
		now:      time.Now,
	}
}

func (s *memoryStore) GetRequest(_ context.Context, requestID int64) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRequestNotFound, requestID)
	}
	return &request, nil
}

func (s *memoryStore) CreateRequest(_ context.Context, request models.NewRequest) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRequestID++
	created := models.Request{
		ID:          s.lastRequestID,
		Title:       request.Title,
		GroupTag:    request.GroupTag,
		Amount:      request.Amount,
		Description: request.Description,
		RequesterID: request.RequesterID,
		CreatedAt:   s.now(),
	}
	s.requests[created.ID] = created

	return &created, nil
}

func (s *memoryStore) MarkApproved(_ context.Context, requestID int64) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRequestNotFound, requestID)
	}
	if request.IsApproved() {
		return nil, ErrAlreadyApproved
	}

	approvedAt := s.now()
	request.ApprovedAt = &approvedAt
	s.requests[requestID] = request

	return &request, nil
}

func (s *memoryStore) SetMessageRef(_ context.Context, requestID int64, channelID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrRequestNotFound, requestID)
	}
	request.ChannelID = channelID
	request.MessageID = messageID
	s.requests[requestID] = request

	return nil
}

func (s *memoryStore) ListPending(_ context.Context) ([]models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.Request, 0)
	for _, request := range s.requests {
		if !request.IsApproved() {
			requests = append(requests, request)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })

	return requests, nil
}

func (s *memoryStore) ListByRequester(_ context.Context, requesterID string) ([]models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.Request, 0)
	for _, request := range s.requests {
		if request.RequesterID == requesterID {
			requests = append(requests, request)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID > requests[j].ID })

	return requests, nil
}

func (s *memoryStore) GetVotes(_ context.Context, requestID int64) ([]models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := make([]models.Vote, 0)
	for key, vote := range s.votes {
		if key.requestID == requestID {
			votes = append(votes, vote)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].ID < votes[j].ID })

	return votes, nil
}

func (s *memoryStore) UpsertVote(_ context.Context, vote models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[vote.RequestID]; !ok {
		return fmt.Errorf("%w: %d", ErrRequestNotFound, vote.RequestID)
	}

	key := voteKey{voterID: vote.VoterID, requestID: vote.RequestID}
	if existing, ok := s.votes[key]; ok {
		existing.IsYes = vote.IsYes
		s.votes[key] = existing
		return nil
	}

	s.lastVoteID++
	vote.ID = s.lastVoteID
	vote.CreatedAt = s.now()
	s.votes[key] = vote

	return nil
}

func (s *memoryStore) DeleteVote(_ context.Context, voterID string, requestID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.votes, voteKey{voterID: voterID, requestID: requestID})
	return nil
}

func (s *memoryStore) SaveMember(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *user
	if existing, ok := s.users[user.TelegramID]; ok {
		saved.ID = existing.ID
	} else {
		s.lastUserID++
		saved.ID = s.lastUserID
	}
	saved.UpdatedAt = s.now()
	s.users[user.TelegramID] = saved

	return &saved, nil
}

func (s *memoryStore) GetMember(_ context.Context, telegramID int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[telegramID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMemberNotFound, telegramID)
	}
	return &user, nil
}
