// Package voting holds the pure vote logic: tallying a ledger, the per-voter toggle
// state machine and the approval latch. Nothing here performs I/O.
package voting

import (
	"funding_approval_system/internal/db/models"
	"sort"
)

// Tally is the derived view of a request's ballot. YesVoters and NoVoters are disjoint
// and sorted.
type Tally struct {
	YesVoters []string
	NoVoters  []string
}

func (t Tally) YesCount() int {
	return len(t.YesVoters)
}

func (t Tally) NoCount() int {
	return len(t.NoVoters)
}

func (t Tally) Total() int {
	return t.YesCount() + t.NoCount()
}

func (t Tally) HasVotes() bool {
	return t.Total() > 0
}

// Compute partitions votes by choice. The result does not depend on the order of votes.
// A voter should appear once; if not, the later entry wins.
func Compute(votes []models.Vote) Tally {
	choices := make(map[string]bool, len(votes))
	for _, vote := range votes {
		choices[vote.VoterID] = vote.IsYes
	}

	tally := Tally{
		YesVoters: make([]string, 0, len(choices)),
		NoVoters:  make([]string, 0),
	}

	for voterID, isYes := range choices {
		if isYes {
			tally.YesVoters = append(tally.YesVoters, voterID)
		} else {
			tally.NoVoters = append(tally.NoVoters, voterID)
		}
	}

	sort.Strings(tally.YesVoters)
	sort.Strings(tally.NoVoters)

	return tally
}
