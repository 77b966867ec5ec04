package model

import "time"

const (
	PublicRoomType  = "public"
	PrivateRoomType = "private"
)

const MaxRoomNameLength = 64

type RoomList []Room

type Room struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Type        string    `db:"type" json:"type"`
	OwnerID     int64     `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// RoomUpdate carries a partial room update; nil fields keep the stored
// value.
type RoomUpdate struct {
	Name        *string
	Description *string
	Type        *string
}

type RoomMemberList []RoomMember

type RoomMember struct {
	UserID    int64  `db:"user_id" json:"user_id"`
	Username  string `db:"username" json:"username"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
	IsOwner   bool   `db:"is_owner" json:"is_owner"`
}
