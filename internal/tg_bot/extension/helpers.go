package extension

import (
	"fmt"
	"funding_approval_system/internal/display"
	"funding_approval_system/internal/voting"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	voteYesAction = "vote_yes"
	voteNoAction  = "vote_no"

	voteYesLabel = "✅ Ja"
	voteNoLabel  = "❌ Nei"
)

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Det oppstod en feil, prøv igjen senere.")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

// VoteKeyboard renders the vote controls bound to a request.
func VoteKeyboard(requestID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(voteYesLabel, voteYesAction+":"+requestID),
			tgbotapi.NewInlineKeyboardButtonData(voteNoLabel, voteNoAction+":"+requestID),
		),
	)
}

// IsVoteData reports whether callback data belongs to a vote button.
func IsVoteData(data string) bool {
	action, _, _ := strings.Cut(data, ":")
	return action == voteYesAction || action == voteNoAction
}

// ParseVoteData reads "vote_yes:<id>" and "vote_no:<id>".
func ParseVoteData(data string) (voting.Choice, int64, error) {
	action, value, found := strings.Cut(data, ":")
	if !found {
		return "", 0, fmt.Errorf("malformed vote data %q", data)
	}

	var choice voting.Choice
	switch action {
	case voteYesAction:
		choice = voting.ChoiceYes
	case voteNoAction:
		choice = voting.ChoiceNo
	default:
		return "", 0, fmt.Errorf("unknown vote action %q", action)
	}

	requestID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || requestID <= 0 {
		return "", 0, fmt.Errorf("malformed request id %q", value)
	}

	return choice, requestID, nil
}

// DecodeMessage reads the segments of a request message back from Telegram. The vote
// controls come from the inline keyboard.
func DecodeMessage(message *tgbotapi.Message) []display.Segment {
	if message == nil {
		return nil
	}
	return display.Decode(message.Text, keyboardRequestID(message.ReplyMarkup))
}

func keyboardRequestID(markup *tgbotapi.InlineKeyboardMarkup) string {
	if markup == nil {
		return ""
	}

	for _, row := range markup.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData == nil || !IsVoteData(*button.CallbackData) {
				continue
			}
			if _, value, found := strings.Cut(*button.CallbackData, ":"); found {
				return value
			}
		}
	}
	return ""
}

// MessageLink builds a t.me link to a message in a private supergroup or channel.
func MessageLink(chatID, messageID string) string {
	return fmt.Sprintf("https://t.me/c/%s/%s", strings.TrimPrefix(chatID, "-100"), messageID)
}

func ParseChatID(value string) (int64, error) {
	chatID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q: %w", value, err)
	}
	return chatID, nil
}

func UserID(user *tgbotapi.User) string {
	return strconv.FormatInt(user.ID, 10)
}
