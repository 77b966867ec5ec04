package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageFailureEvent is published to the message DLQ topic for every
// message the pipeline had to drop. MessageID matches the id returned to
// the submitter when the message was accepted.
type MessageFailureEvent struct {
	MessageID  uuid.UUID `json:"message_id"`
	SenderID   int64     `json:"sender_id"`
	RoomID     int64     `json:"room_id"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
