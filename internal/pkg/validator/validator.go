package validator

import (
	"fmt"
	"strings"

	"github.com/s21platform/chat-api/internal/api"
	"github.com/s21platform/chat-api/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > model.MaxMessageLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", model.MaxMessageLength)
	}

	return nil
}

func (v *Validator) ValidateAttachment(filename string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("attachment cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("attachment filename must not contain path separators")
	}

	return nil
}

func (v *Validator) ValidateCreateRoom(req *api.CreateRoomRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("room name is required")
	}

	if len([]rune(req.Name)) > model.MaxRoomNameLength {
		return fmt.Errorf("room name exceeds maximum length of %d characters", model.MaxRoomNameLength)
	}

	return validateRoomType(req.Type)
}

func (v *Validator) ValidateUpdateRoom(req *api.UpdateRoomRequest) error {
	if req.Name == nil && req.Description == nil && req.Type == nil {
		return fmt.Errorf("at least one field must be provided")
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("room name cannot be empty")
		}
		if len([]rune(*req.Name)) > model.MaxRoomNameLength {
			return fmt.Errorf("room name exceeds maximum length of %d characters", model.MaxRoomNameLength)
		}
	}

	if req.Type != nil {
		return validateRoomType(*req.Type)
	}

	return nil
}

func validateRoomType(roomType string) error {
	switch roomType {
	case model.PublicRoomType, model.PrivateRoomType:
		return nil
	default:
		return fmt.Errorf("room type '%s' is not supported", roomType)
	}
}
