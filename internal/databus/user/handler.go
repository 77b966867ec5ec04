package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-api/internal/config"
	"github.com/s21platform/chat-api/internal/model"
)

type DBRepo interface {
	UpdateUserNickname(ctx context.Context, userID int64, newNickname string) error
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdatedHandler")

	var event model.UserUpdatedEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return
	}

	if err := h.repository.UpdateUserNickname(ctx, event.UserID, event.Nickname); err != nil {
		logger.Error(fmt.Sprintf("failed to update nickname for user %d: %v", event.UserID, err))
	}
}
