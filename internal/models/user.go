package models

import "time"

// User is a directory record of everyone who has contacted the bot.
// It is an audit/profile record only; ticket state never touches the
// database.
type User struct {
	ID           int64     `json:"id"`
	Username     *string   `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     *string   `json:"last_name"`
	IsBot        bool      `json:"is_bot"`
	LanguageCode *string   `json:"language_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSeen     time.Time `json:"last_seen"`
}

type TelegramUser struct {
	ID           int64   `json:"id"`
	Username     *string `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name"`
	IsBot        bool    `json:"is_bot"`
	LanguageCode *string `json:"language_code"`
}
