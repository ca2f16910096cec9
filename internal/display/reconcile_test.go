package display

import (
	"funding_approval_system/internal/voting"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reconciler = Reconciler{}

func tallyOf(yes, no []string) voting.Tally {
	if yes == nil {
		yes = []string{}
	}
	if no == nil {
		no = []string{}
	}
	return voting.Tally{YesVoters: yes, NoVoters: no}
}

func TestReconcile_UpdatesVoteCount(t *testing.T) {
	segments := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001", "U002", "U003"}, []string{"U004"}), false)

	assert.Equal(t, "Stemmer: Ja: 3 | Nei: 1", segments[4].Text)
}

func TestReconcile_AddsVoterListWhenVotesExist(t *testing.T) {
	segments := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001", "U002"}, []string{"U003"}), false)

	require.Len(t, segments, 7)
	assert.Equal(t, RoleVoterList, segments[6].Role)
	assert.Equal(t, "✅ U001, U002\n❌ U003", segments[6].Text)
}

func TestReconcile_NoVoterListWithoutVotes(t *testing.T) {
	segments := reconciler.Reconcile(Build(testRequest(), nil), tallyOf(nil, nil), false)

	assert.Len(t, segments, 6)
	assert.False(t, Has(segments, RoleVoterList))
	assert.Equal(t, "Stemmer: Ja: 0 | Nei: 0", segments[4].Text)
}

func TestReconcile_ReplacesOldVoterList(t *testing.T) {
	segments := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001"}, nil), false)
	require.Len(t, segments, 7)

	segments = reconciler.Reconcile(segments, tallyOf([]string{"U002", "U003"}, []string{"U004"}), false)

	require.Len(t, segments, 7)
	assert.Equal(t, "✅ U002, U003\n❌ U004", segments[6].Text)
}

func TestReconcile_RetractingLastVoteRemovesVoterList(t *testing.T) {
	segments := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001"}, nil), false)
	segments = reconciler.Reconcile(segments, tallyOf(nil, nil), false)

	assert.Len(t, segments, 6)
	assert.False(t, Has(segments, RoleVoterList))
}

func TestReconcile_ApprovedKeepsActionsAndAddsNotice(t *testing.T) {
	segments := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001", "U002", "U003"}, nil), true)

	assert.Equal(t, 1, Count(segments, RoleActions))
	last := segments[len(segments)-1]
	assert.Equal(t, RoleApproval, last.Role)
	assert.Equal(t, ApprovalText, last.Text)
}

func TestReconcile_ApprovedAddsVoterListWhenMissing(t *testing.T) {
	segments := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001", "U002", "U003"}, []string{"U004"}), true)

	require.Equal(t, 1, Count(segments, RoleVoterList))
	assert.Equal(t, "✅ U001, U002, U003\n❌ U004", segments[6].Text)
}

func TestReconcile_ApprovedPreservesExistingVoterList(t *testing.T) {
	withVotes := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001", "U002"}, []string{"U003"}), false)

	approved := reconciler.Reconcile(withVotes, tallyOf([]string{"U001", "U002", "U004"}, []string{"U005"}), true)

	assert.Equal(t, "Stemmer: Ja: 3 | Nei: 1", approved[4].Text)
	require.Equal(t, 1, Count(approved, RoleVoterList))
	assert.Equal(t, "✅ U001, U002\n❌ U003", approved[6].Text)
}

func TestReconcile_PendingAlwaysRefreshesVoterList(t *testing.T) {
	withVotes := reconciler.Reconcile(Build(testRequest(), nil), tallyOf([]string{"U001"}, nil), false)

	refreshed := reconciler.Reconcile(withVotes, tallyOf([]string{"U001", "U002"}, nil), false)

	assert.Equal(t, "✅ U001, U002", refreshed[6].Text)
}

func TestReconcile_PreservesBaseSegments(t *testing.T) {
	base := Build(testRequest(), nil)

	segments := reconciler.Reconcile(base, tallyOf([]string{"U001"}, nil), true)

	assert.Equal(t, base[:4], segments[:4])
	assert.Equal(t, base[5], segments[5])
}

func TestReconcile_NoBloatOnRepeatedApproval(t *testing.T) {
	tally := tallyOf([]string{"U001", "U002"}, []string{"U003"})
	segments := reconciler.Reconcile(Build(testRequest(), nil), tally, false)

	first := reconciler.Reconcile(segments, tally, true)
	second := reconciler.Reconcile(first, tally, true)
	third := reconciler.Reconcile(second, tally, true)

	assert.Len(t, second, len(first))
	assert.Len(t, third, len(second))
	assert.Equal(t, 1, Count(third, RoleApproval))
}

func TestReconcile_RepairsDuplicateVoterLists(t *testing.T) {
	broken := Build(testRequest(), nil)
	for i := 0; i < 5; i++ {
		broken = append(broken, Segment{Role: RoleVoterList, Text: "✅ U001, U002\n❌ U003"})
	}
	require.Len(t, broken, 11)

	fixed := reconciler.Reconcile(broken, tallyOf([]string{"U001", "U002", "U004"}, []string{"U003"}), false)

	require.Len(t, fixed, 7)
	assert.Equal(t, 1, Count(fixed, RoleVoterList))
	assert.Equal(t, "✅ U001, U002, U004\n❌ U003", fixed[6].Text)
	assert.Equal(t, "Stemmer: Ja: 3 | Nei: 1", fixed[4].Text)
	assert.Equal(t, broken[:4], fixed[:4])
}

func TestReconcile_RepairsDuplicateNoticesCountsAndControls(t *testing.T) {
	base := Build(testRequest(), nil)
	broken := append([]Segment{}, base...)
	broken = append(broken,
		Segment{Role: RoleApproval, Text: ApprovalText},
		Segment{Role: RoleVoteCount, Text: "Stemmer: Ja: 99 | Nei: 0"},
		base[5],
		Segment{Role: RoleApproval, Text: ApprovalText},
		Segment{Role: RoleVoterList, Text: "✅ U009"},
		Segment{Role: RoleApproval, Text: ApprovalText},
	)

	fixed := reconciler.Reconcile(broken, tallyOf([]string{"U001"}, nil), true)

	assert.Equal(t, 1, Count(fixed, RoleVoteCount))
	assert.Equal(t, 1, Count(fixed, RoleActions))
	assert.Equal(t, 1, Count(fixed, RoleVoterList))
	assert.Equal(t, 1, Count(fixed, RoleApproval))
	assert.Equal(t, "Stemmer: Ja: 1 | Nei: 0", fixed[4].Text)
	assert.Len(t, fixed, 8)
}

func TestReconcile_ReinsertsMissingVoteCountBeforeActions(t *testing.T) {
	base := Build(testRequest(), nil)
	broken := append(append([]Segment{}, base[:4]...), base[5])

	fixed := reconciler.Reconcile(broken, tallyOf([]string{"U001"}, nil), false)

	assert.Equal(t, []Role{RoleHeader, RoleDetails, RoleDescription, RoleDivider, RoleVoteCount, RoleActions, RoleVoterList}, rolesOf(fixed))
}

func TestReconcile_Idempotent(t *testing.T) {
	base := Build(testRequest(), nil)
	priors := map[string][]Segment{
		"fresh": base,
		"voted": reconciler.Reconcile(base, tallyOf([]string{"U007"}, []string{"U008"}), false),
		"bloated": append(append([]Segment{}, base...),
			Segment{Role: RoleVoterList, Text: "✅ U001"},
			Segment{Role: RoleVoterList, Text: "✅ U002"},
			Segment{Role: RoleApproval, Text: ApprovalText},
		),
		"empty": nil,
	}
	tallies := []voting.Tally{
		tallyOf(nil, nil),
		tallyOf([]string{"U001", "U002"}, nil),
		tallyOf([]string{"U001"}, []string{"U003"}),
	}

	for name, prior := range priors {
		for _, tally := range tallies {
			for _, approved := range []bool{false, true} {
				once := reconciler.Reconcile(prior, tally, approved)
				twice := reconciler.Reconcile(once, tally, approved)
				assert.Equal(t, once, twice, "prior=%s approved=%v", name, approved)
				assert.Equal(t, 1, Count(once, RoleVoteCount))
				assert.LessOrEqual(t, Count(once, RoleVoterList), 1)
				assert.LessOrEqual(t, Count(once, RoleApproval), 1)
			}
		}
	}
}

func TestReconcile_UsesMention(t *testing.T) {
	r := Reconciler{Mention: func(userID string) string { return "@" + userID }}

	segments := r.Reconcile(Build(testRequest(), nil), tallyOf([]string{"ola"}, []string{"kari"}), false)

	assert.Equal(t, "✅ @ola\n❌ @kari", segments[6].Text)
}
