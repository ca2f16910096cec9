package display

import (
	"funding_approval_system/internal/db/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() *models.Request {
	return &models.Request{
		ID:          15,
		Title:       "Julebord 2025",
		GroupTag:    models.GroupTagBedkom,
		Amount:      "10000",
		Description: "Fancy julebord",
		RequesterID: "U111",
	}
}

func TestBuild_Structure(t *testing.T) {
	segments := Build(testRequest(), nil)

	require.Len(t, segments, 6)
	assert.Equal(t, []Role{RoleHeader, RoleDetails, RoleDescription, RoleDivider, RoleVoteCount, RoleActions}, rolesOf(segments))
	assert.Equal(t, "🎫 Søknad: Julebord 2025", segments[0].Text)
	assert.Equal(t, "Søker: U111\nGruppe: Bedkom\nBeløp: 10000 kr", segments[1].Text)
	assert.Equal(t, "Beskrivelse:\nFancy julebord", segments[2].Text)
	assert.Equal(t, "Stemmer: Ja: 0 | Nei: 0", segments[4].Text)
	assert.Equal(t, "15", segments[5].Text)
}

func TestBuild_UsesMention(t *testing.T) {
	segments := Build(testRequest(), func(userID string) string { return "@" + userID })

	assert.Equal(t, "Søker: @U111\nGruppe: Bedkom\nBeløp: 10000 kr", segments[1].Text)
}

func TestBuild_NormalizesFreeText(t *testing.T) {
	request := testRequest()
	request.Title = "Workshop\n\n  2025"
	request.Description = "Line one\n\n\nLine two\n  \nLine three"

	segments := Build(request, nil)

	assert.Equal(t, "🎫 Søknad: Workshop 2025", segments[0].Text)
	assert.Equal(t, "Beskrivelse:\nLine one\nLine two\nLine three", segments[2].Text)
}

func TestBuild_EmptyDescription(t *testing.T) {
	request := testRequest()
	request.Description = "   "

	segments := Build(request, nil)

	assert.Equal(t, "Beskrivelse:\nIngen beskrivelse", segments[2].Text)
}

func TestBuild_IrregularGroupLabel(t *testing.T) {
	request := testRequest()
	request.GroupTag = models.GroupTagConsulting

	segments := Build(request, nil)

	assert.Contains(t, segments[1].Text, "Gruppe: echo Consulting")
}

func TestVoterListText(t *testing.T) {
	assert.Equal(t, "✅ U001, U002\n❌ U003", VoterListText([]string{"U001", "U002"}, []string{"U003"}, nil))
	assert.Equal(t, "✅ U001", VoterListText([]string{"U001"}, nil, nil))
	assert.Equal(t, "❌ U001, U002", VoterListText(nil, []string{"U001", "U002"}, nil))
}

func TestRequestID(t *testing.T) {
	id, ok := RequestID(Build(testRequest(), nil))
	assert.True(t, ok)
	assert.Equal(t, int64(15), id)

	_, ok = RequestID([]Segment{{Role: RoleHeader, Text: "x"}})
	assert.False(t, ok)
}

func rolesOf(segments []Segment) []Role {
	roles := make([]Role, 0, len(segments))
	for _, segment := range segments {
		roles = append(roles, segment.Role)
	}
	return roles
}
