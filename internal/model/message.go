package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeText  = "TEXT"
	MessageTypeImage = "IMAGE"
	MessageTypeFile  = "FILE"
)

const MaxMessageLength = 256

// ErrConstraintViolation marks insert failures caused by a database
// constraint (missing sender or room, length overflow) as opposed to a
// transient storage error.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrNotFound marks lookups of rows that do not exist.
var ErrNotFound = errors.New("not found")

// Message is an in-flight message accepted by the pipeline but not yet
// persisted. Exactly one of Text and AttachmentData is set; the HTTP layer
// validates this before upload. ID correlates the message with failure
// events, the database assigns its own row id on insert.
type Message struct {
	ID                 uuid.UUID
	SenderID           int64
	RoomID             int64
	Text               string
	AttachmentData     []byte
	AttachmentFilename string
}

func (m *Message) HasAttachment() bool {
	return m.AttachmentData != nil
}

// MessageRow is the persisted representation of a message. For attachments
// Content holds the content digest used as the lookup key on disk.
type MessageRow struct {
	SenderID int64  `db:"sender_id"`
	RoomID   int64  `db:"room_id"`
	Type     string `db:"type"`
	Content  string `db:"content"`
}

type RoomMessageList []RoomMessage

type RoomMessage struct {
	ID             int64     `db:"id" json:"id"`
	Type           string    `db:"type" json:"type"`
	Content        string    `db:"content" json:"content"`
	SentAt         time.Time `db:"sent_at" json:"sent_at"`
	SenderID       int64     `db:"sender_id" json:"sender_id"`
	SenderUsername string    `db:"sender_username" json:"sender_username"`
}
