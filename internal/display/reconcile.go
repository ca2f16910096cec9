package display

import "funding_approval_system/internal/voting"

type Reconciler struct {
	Mention Mention
}

// Reconcile derives the current segments from a previously rendered list. Base segments
// keep their order and content. The vote count is rewritten from the tally, every voter
// list and approval notice in prior is dropped, and at most one of each is appended
// again. Applying Reconcile to its own output with the same inputs returns it unchanged.
//
// Once approved, a voter list already present in prior is kept verbatim so late votes
// do not rewrite a decided request.
func (r Reconciler) Reconcile(prior []Segment, tally voting.Tally, approved bool) []Segment {
	voteCount := Segment{Role: RoleVoteCount, Text: VoteCountText(tally.YesCount(), tally.NoCount())}

	result := make([]Segment, 0, len(prior)+2)
	var (
		priorVoterList *Segment
		hasVoteCount   bool
		hasActions     bool
	)

	for i := range prior {
		segment := prior[i]

		switch segment.Role {
		case RoleVoterList:
			if priorVoterList == nil {
				priorVoterList = &prior[i]
			}
		case RoleApproval:
		case RoleVoteCount:
			if !hasVoteCount {
				result = append(result, voteCount)
				hasVoteCount = true
			}
		case RoleActions:
			if hasActions {
				continue
			}
			if !hasVoteCount {
				result = append(result, voteCount)
				hasVoteCount = true
			}
			result = append(result, segment)
			hasActions = true
		default:
			result = append(result, segment)
		}
	}

	if !hasVoteCount {
		result = append(result, voteCount)
	}

	switch {
	case approved && priorVoterList != nil:
		result = append(result, *priorVoterList)
	case tally.HasVotes():
		result = append(result, Segment{
			Role: RoleVoterList,
			Text: VoterListText(tally.YesVoters, tally.NoVoters, r.Mention),
		})
	}

	if approved {
		result = append(result, Segment{Role: RoleApproval, Text: ApprovalText})
	}

	return result
}
