package voting

import (
	"fmt"
	"funding_approval_system/internal/db/models"
)

type Choice string

const (
	ChoiceYes Choice = "yes"
	ChoiceNo  Choice = "no"
)

func (c Choice) IsValid() bool {
	return c == ChoiceYes || c == ChoiceNo
}

func (c Choice) IsYes() bool {
	return c == ChoiceYes
}

func ParseChoice(value string) (Choice, error) {
	choice := Choice(value)
	if !choice.IsValid() {
		return "", fmt.Errorf("unknown vote choice %q", value)
	}
	return choice, nil
}

type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionRetract Action = "retract"
)

// Decision is the ledger mutation a vote click resolves to. Vote is nil for ActionRetract.
type Decision struct {
	Action Action
	Vote   *models.Vote
}

// RecordVote applies a click to the voter's current position. Clicking the current choice
// retracts the vote, clicking the other choice flips it.
func RecordVote(existing *models.Vote, voterID string, requestID int64, choice Choice) Decision {
	if existing == nil {
		return Decision{
			Action: ActionCreate,
			Vote:   &models.Vote{VoterID: voterID, RequestID: requestID, IsYes: choice.IsYes()},
		}
	}

	if existing.IsYes == choice.IsYes() {
		return Decision{Action: ActionRetract}
	}

	return Decision{
		Action: ActionUpdate,
		Vote:   &models.Vote{ID: existing.ID, VoterID: voterID, RequestID: requestID, IsYes: choice.IsYes(), CreatedAt: existing.CreatedAt},
	}
}

// FindVote returns the voter's vote among votes, or nil.
func FindVote(votes []models.Vote, voterID string) *models.Vote {
	var found *models.Vote
	for i := range votes {
		if votes[i].VoterID == voterID {
			found = &votes[i]
		}
	}
	return found
}
