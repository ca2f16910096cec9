package voting

// DecideApproval reports whether a request is approved. Approval latches: once a request
// is approved it stays approved. Otherwise it needs at least threshold yes votes and no
// dissent at all.
func DecideApproval(t Tally, alreadyApproved bool, threshold int) bool {
	if alreadyApproved {
		return true
	}
	return t.YesCount() >= threshold && t.NoCount() == 0
}
