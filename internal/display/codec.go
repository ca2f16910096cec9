package display

import (
	"strings"
)

const segmentSeparator = "\n\n"

// Encode renders segments as plain message text. Action segments are returned separately
// because they map to interactive controls rather than text.
func Encode(segments []Segment) (text string, actions *Segment) {
	parts := make([]string, 0, len(segments))
	for i := range segments {
		if segments[i].Role == RoleActions {
			if actions == nil {
				actions = &segments[i]
			}
			continue
		}
		parts = append(parts, segments[i].Text)
	}
	return strings.Join(parts, segmentSeparator), actions
}

// Decode splits message text back into segments and classifies each one by its
// markers. A non-empty controls value means the message carries vote controls; the
// action segment is placed right after the vote count, where Build puts it.
func Decode(text string, controls string) []Segment {
	var segments []Segment
	for _, part := range strings.Split(text, segmentSeparator) {
		part = strings.Trim(part, "\n")
		if part == "" {
			continue
		}
		segments = append(segments, Segment{Role: Classify(part), Text: part})
	}

	if controls == "" {
		return segments
	}

	actions := Segment{Role: RoleActions, Text: controls}
	for i, segment := range segments {
		if segment.Role == RoleVoteCount {
			return append(segments[:i+1], append([]Segment{actions}, segments[i+1:]...)...)
		}
	}
	return append(segments, actions)
}

func Classify(text string) Role {
	switch {
	case text == ApprovalText:
		return RoleApproval
	case strings.HasPrefix(text, headerPrefix):
		return RoleHeader
	case strings.HasPrefix(text, requesterPrefix):
		return RoleDetails
	case strings.HasPrefix(text, descriptionPrefix):
		return RoleDescription
	case text == DividerText:
		return RoleDivider
	case strings.HasPrefix(text, voteCountPrefix):
		return RoleVoteCount
	case isVoterList(text):
		return RoleVoterList
	default:
		return RoleOther
	}
}

func isVoterList(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, yesMarker) && !strings.HasPrefix(line, noMarker) {
			return false
		}
	}
	return true
}
