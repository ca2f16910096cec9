package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type GroupTag string

const (
	GroupTagWebkom      GroupTag = "webkom"
	GroupTagBedkom      GroupTag = "bedkom"
	GroupTagTilde       GroupTag = "tilde"
	GroupTagGnist       GroupTag = "gnist"
	GroupTagHyggkom     GroupTag = "hyggkom"
	GroupTagConsulting  GroupTag = "consulting"
	GroupTagESC         GroupTag = "esc"
	GroupTagHovedstyret GroupTag = "hovedstyret"
	GroupTagOther       GroupTag = "annet"
)

// GroupTags is the fixed set of groups a request can be filed under, in display order.
var GroupTags = []GroupTag{
	GroupTagWebkom,
	GroupTagBedkom,
	GroupTagTilde,
	GroupTagGnist,
	GroupTagHyggkom,
	GroupTagConsulting,
	GroupTagESC,
	GroupTagHovedstyret,
	GroupTagOther,
}

var irregularGroupLabels = map[GroupTag]string{
	GroupTagConsulting: "echo Consulting",
	GroupTagESC:        "ESC",
}

func (g GroupTag) String() string {
	return string(g)
}

func (g GroupTag) IsValid() bool {
	for _, tag := range GroupTags {
		if tag == g {
			return true
		}
	}
	return false
}

func (g GroupTag) Label() string {
	if label, ok := irregularGroupLabels[g]; ok {
		return label
	}
	return cases.Title(language.Norwegian).String(g.String())
}

// ParseGroupTag accepts either a tag or its display label.
func ParseGroupTag(value string) (GroupTag, bool) {
	for _, tag := range GroupTags {
		if value == tag.String() || value == tag.Label() {
			return tag, true
		}
	}
	return "", false
}

type Request struct {
	ID          int64      `json:"id" pg:",pk" gorm:"primaryKey"`
	Title       string     `json:"title" pg:",notnull" gorm:"not null"`
	GroupTag    GroupTag   `json:"group_tag" pg:",notnull" gorm:"not null"`
	Amount      string     `json:"amount" pg:",notnull" gorm:"not null"`
	Description string     `json:"description" pg:",notnull" gorm:"not null"`
	RequesterID string     `json:"requester_id" pg:",notnull" gorm:"not null;index"`
	ChannelID   string     `json:"channel_id"`
	MessageID   string     `json:"message_id"`
	CreatedAt   time.Time  `json:"created_at" pg:"default:now()" gorm:"autoCreateTime;index"`
	ApprovedAt  *time.Time `json:"approved_at"`
}

func (r *Request) IsApproved() bool {
	return r.ApprovedAt != nil
}

func (r *Request) HasMessage() bool {
	return r.ChannelID != "" && r.MessageID != ""
}

// NewRequest holds the fields a member provides when submitting a request.
type NewRequest struct {
	Title       string   `json:"title"`
	GroupTag    GroupTag `json:"group_tag"`
	Amount      string   `json:"amount"`
	Description string   `json:"description"`
	RequesterID string   `json:"requester_id"`
}
