package voting

import (
	"fmt"
	"funding_approval_system/internal/db/models"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func votesOf(yes, no int) []models.Vote {
	var votes []models.Vote
	for i := 0; i < yes; i++ {
		votes = append(votes, models.Vote{VoterID: fmt.Sprintf("Y%02d", i), RequestID: 1, IsYes: true})
	}
	for i := 0; i < no; i++ {
		votes = append(votes, models.Vote{VoterID: fmt.Sprintf("N%02d", i), RequestID: 1, IsYes: false})
	}
	return votes
}

func TestCompute_Empty(t *testing.T) {
	tally := Compute(nil)
	assert.Equal(t, 0, tally.YesCount())
	assert.Equal(t, 0, tally.NoCount())
	assert.False(t, tally.HasVotes())
}

func TestCompute_MixedVotes(t *testing.T) {
	votes := []models.Vote{
		{VoterID: "U002", IsYes: true},
		{VoterID: "U004", IsYes: false},
		{VoterID: "U001", IsYes: true},
		{VoterID: "U003", IsYes: true},
	}

	tally := Compute(votes)
	assert.Equal(t, []string{"U001", "U002", "U003"}, tally.YesVoters)
	assert.Equal(t, []string{"U004"}, tally.NoVoters)
	assert.Equal(t, 4, tally.Total())
}

func TestCompute_LaterDuplicateWins(t *testing.T) {
	votes := []models.Vote{
		{VoterID: "U001", IsYes: true},
		{VoterID: "U001", IsYes: false},
	}

	tally := Compute(votes)
	assert.Empty(t, tally.YesVoters)
	assert.Equal(t, []string{"U001"}, tally.NoVoters)
}

func TestCompute_OrderIndependent(t *testing.T) {
	votes := votesOf(6, 3)
	expected := Compute(votes)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		shuffled := append([]models.Vote(nil), votes...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, expected, Compute(shuffled))
	}
}

func TestCompute_PartitionIsDisjointAndComplete(t *testing.T) {
	for yes := 0; yes < 5; yes++ {
		for no := 0; no < 5; no++ {
			votes := votesOf(yes, no)
			tally := Compute(votes)

			seen := make(map[string]bool)
			for _, voter := range tally.YesVoters {
				seen[voter] = true
			}
			for _, voter := range tally.NoVoters {
				assert.False(t, seen[voter], "voter %s in both sets", voter)
			}
			assert.Equal(t, len(votes), tally.Total())
		}
	}
}
