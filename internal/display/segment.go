// Package display renders a request and its ballot as an ordered list of segments and
// reconciles a previously rendered list against the current tally.
package display

import (
	"fmt"
	"funding_approval_system/internal/db/models"
	"regexp"
	"strconv"
	"strings"
)

type Role int

const (
	RoleOther Role = iota
	RoleHeader
	RoleDetails
	RoleDescription
	RoleDivider
	RoleVoteCount
	RoleActions
	RoleVoterList
	RoleApproval
)

func (r Role) String() string {
	switch r {
	case RoleHeader:
		return "header"
	case RoleDetails:
		return "details"
	case RoleDescription:
		return "description"
	case RoleDivider:
		return "divider"
	case RoleVoteCount:
		return "vote_count"
	case RoleActions:
		return "actions"
	case RoleVoterList:
		return "voter_list"
	case RoleApproval:
		return "approval"
	default:
		return "other"
	}
}

// Segment is one block of a rendered request message. For RoleActions, Text carries the
// request id bound to the vote controls.
type Segment struct {
	Role Role
	Text string
}

const (
	headerPrefix      = "🎫 Søknad: "
	requesterPrefix   = "Søker: "
	descriptionPrefix = "Beskrivelse:"
	voteCountPrefix   = "Stemmer: "
	yesMarker         = "✅ "
	noMarker          = "❌ "

	DividerText       = "──────────"
	NoDescriptionText = "Ingen beskrivelse"
	ApprovalText      = "✅ Godkjent! Søknaden har blitt godkjent av styret."
	FallbackText      = "Ny søknad"
)

var blankLines = regexp.MustCompile(`\n\s*\n+`)

// Mention renders a user reference for display.
type Mention func(userID string) string

func identity(userID string) string {
	return userID
}

// Build renders the initial segments for a freshly submitted request.
func Build(request *models.Request, mention Mention) []Segment {
	if mention == nil {
		mention = identity
	}

	return []Segment{
		{Role: RoleHeader, Text: headerPrefix + singleLine(request.Title)},
		{Role: RoleDetails, Text: fmt.Sprintf(
			"%s%s\nGruppe: %s\nBeløp: %s kr",
			requesterPrefix,
			mention(request.RequesterID),
			request.GroupTag.Label(),
			singleLine(request.Amount),
		)},
		{Role: RoleDescription, Text: descriptionPrefix + "\n" + normalizeDescription(request.Description)},
		{Role: RoleDivider, Text: DividerText},
		{Role: RoleVoteCount, Text: VoteCountText(0, 0)},
		{Role: RoleActions, Text: strconv.FormatInt(request.ID, 10)},
	}
}

// FallbackFor is the notification text shown by clients that cannot render segments.
func FallbackFor(request *models.Request, mention Mention) string {
	if mention == nil {
		mention = identity
	}
	return fmt.Sprintf("%s fra %s", FallbackText, mention(request.RequesterID))
}

func VoteCountText(yes, no int) string {
	return fmt.Sprintf("%sJa: %d | Nei: %d", voteCountPrefix, yes, no)
}

func VoterListText(yesVoters, noVoters []string, mention Mention) string {
	if mention == nil {
		mention = identity
	}

	var lines []string
	if len(yesVoters) > 0 {
		lines = append(lines, yesMarker+joinMentions(yesVoters, mention))
	}
	if len(noVoters) > 0 {
		lines = append(lines, noMarker+joinMentions(noVoters, mention))
	}
	return strings.Join(lines, "\n")
}

// RequestID returns the id bound to the first action segment.
func RequestID(segments []Segment) (int64, bool) {
	for _, segment := range segments {
		if segment.Role == RoleActions {
			id, err := strconv.ParseInt(segment.Text, 10, 64)
			return id, err == nil
		}
	}
	return 0, false
}

func Count(segments []Segment, role Role) int {
	count := 0
	for _, segment := range segments {
		if segment.Role == role {
			count++
		}
	}
	return count
}

func Has(segments []Segment, role Role) bool {
	return Count(segments, role) > 0
}

func joinMentions(userIDs []string, mention Mention) string {
	rendered := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		rendered = append(rendered, mention(userID))
	}
	return strings.Join(rendered, ", ")
}

func singleLine(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Segments are separated by blank lines in text form, so descriptions must not contain any.
func normalizeDescription(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return NoDescriptionText
	}
	return blankLines.ReplaceAllString(value, "\n")
}
