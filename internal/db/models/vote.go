package models

import "time"

type Vote struct {
	ID        int64     `json:"id" pg:",pk" gorm:"primaryKey"`
	VoterID   string    `json:"voter_id" pg:",notnull" gorm:"not null;uniqueIndex:vote_voter_request_unique"`
	RequestID int64     `json:"request_id" pg:",notnull" gorm:"not null;uniqueIndex:vote_voter_request_unique;index"`
	IsYes     bool      `json:"is_yes" pg:",use_zero,notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()" gorm:"autoCreateTime"`
}
