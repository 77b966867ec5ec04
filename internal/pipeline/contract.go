package pipeline

import (
	"context"

	"github.com/s21platform/chat-api/internal/model"
)

type BatchInserter interface {
	InsertMessages(ctx context.Context, rows []model.MessageRow) error
	InsertMessage(ctx context.Context, row model.MessageRow) error
}

type AttachmentStore interface {
	Save(roomID int64, data []byte, filename string) (string, string, error)
}

type FailureReporter interface {
	ReportFailure(ctx context.Context, message model.Message, cause error) error
}
