package workflow

import (
	"context"
	"funding_approval_system/internal/display"
)

//go:generate mockgen -source=chat.go -destination=mocks/mock_chat.go -package=mock_workflow

// MessageRef identifies a posted message.
type MessageRef struct {
	ChannelID string
	MessageID string
}

func (r MessageRef) IsZero() bool {
	return r.ChannelID == "" || r.MessageID == ""
}

// Content is a message body. Segments are rendered by the chat when present, Text is the
// plain fallback. ReplyTo posts the message as a reply in the referenced thread.
type Content struct {
	Text     string
	Segments []display.Segment
	ReplyTo  *MessageRef
}

type Chat interface {
	PostMessage(ctx context.Context, channelID string, content Content) (MessageRef, error)
	UpdateMessage(ctx context.Context, ref MessageRef, content Content) error
	// PostEphemeral shows text to a single user only.
	PostEphemeral(ctx context.Context, channelID, userID, text string) error
	IsMember(ctx context.Context, channelID, userID string) (bool, error)
	Mention(ctx context.Context, userID string) string
}
