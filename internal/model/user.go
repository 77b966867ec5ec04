package model

import "time"

type UserList []User

type User struct {
	ID        int64  `db:"id" json:"id"`
	Username  string `db:"username" json:"username"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
}

type FriendRequestList []FriendRequest

// FriendRequest is an incoming pending request joined with the sender's
// user row.
type FriendRequest struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"username"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
	SentAt    time.Time `db:"sent_at" json:"sent_at"`
}

// UserUpdatedEvent is consumed from the user topic by the kafka worker.
type UserUpdatedEvent struct {
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname"`
}
