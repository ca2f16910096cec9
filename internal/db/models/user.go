package models

import "time"

type TelegramState struct {
	LastCommand      string `json:"last_command"`
	LastCommandState string `json:"last_command_state"`
}

// User is a member known to the bot. Votes and requests reference members by TelegramID.
type User struct {
	ID               int64         `json:"id" pg:",pk" gorm:"primaryKey"`
	Name             string        `json:"name"`
	TelegramID       int64         `json:"telegram_id" pg:",notnull,unique" gorm:"not null;uniqueIndex"`
	TelegramNickname string        `json:"telegram_nickname"`
	TempRequest      NewRequest    `json:"temp_request" gorm:"serializer:json;type:text"`
	TelegramState    TelegramState `json:"telegram_state" gorm:"serializer:json;type:text"`
	UpdatedAt        time.Time     `json:"updated_at" pg:"default:now()" gorm:"autoUpdateTime"`
}

func (u *User) Mention() string {
	if u.TelegramNickname != "" {
		return "@" + u.TelegramNickname
	}
	return u.Name
}

func (u *User) ResetState() {
	u.TempRequest = NewRequest{}
	u.TelegramState = TelegramState{}
}
