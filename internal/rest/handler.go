package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-api/internal/api"
	"github.com/s21platform/chat-api/internal/config"
	"github.com/s21platform/chat-api/internal/model"
	"github.com/s21platform/chat-api/internal/pkg/tx"
)

const maxAttachmentBytes = 32 << 20

type Handler struct {
	repository DBRepo
	pipeline   MessagePipeline
	validator  Validator
}

func New(repo DBRepo, pipeline MessagePipeline, validator Validator) *Handler {
	return &Handler{
		repository: repo,
		pipeline:   pipeline,
		validator:  validator,
	}
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if !h.requireMembership(w, r, logger, roomID, senderID) {
		return
	}

	message := model.Message{
		ID:       uuid.New(),
		SenderID: senderID,
		RoomID:   roomID,
		Text:     req.Content,
	}

	if err := h.pipeline.Upload(r.Context(), message); err != nil {
		logger.Error(fmt.Sprintf("failed to upload message: %v", err))
		h.writeError(w, "failed to accept message", http.StatusInternalServerError)
		return
	}

	response := api.SendMessageResponse{
		MessageId: message.ID.String(),
	}

	h.writeJSON(w, response, http.StatusAccepted)
}

func (h *Handler) SendAttachment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendAttachment")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentBytes); err != nil {
		logger.Error(fmt.Sprintf("failed to parse multipart form: %v", err))
		h.writeError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read attachment: %v", err))
		h.writeError(w, "attachment file is required", http.StatusBadRequest)
		return
	}
	defer file.Close() //nolint:errcheck // .

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read attachment body: %v", err))
		h.writeError(w, "failed to read attachment", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateAttachment(header.Filename, data); err != nil {
		logger.Error(fmt.Sprintf("attachment validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("attachment validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if !h.requireMembership(w, r, logger, roomID, senderID) {
		return
	}

	message := model.Message{
		ID:                 uuid.New(),
		SenderID:           senderID,
		RoomID:             roomID,
		AttachmentData:     data,
		AttachmentFilename: header.Filename,
	}

	if err := h.pipeline.Upload(r.Context(), message); err != nil {
		logger.Error(fmt.Sprintf("failed to upload attachment: %v", err))
		h.writeError(w, "failed to accept attachment", http.StatusInternalServerError)
		return
	}

	response := api.SendMessageResponse{
		MessageId: message.ID.String(),
	}

	h.writeJSON(w, response, http.StatusAccepted)
}

func (h *Handler) GetRoomMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRoomMessages")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if !h.requireMembership(w, r, logger, roomID, userID) {
		return
	}

	offset := queryInt32(r, "offset", 0)
	limit := queryInt32(r, "limit", 20)

	messages, err := h.repository.GetRoomRecentMessages(r.Context(), roomID, offset, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		apiMessages[i] = api.Message{
			Id:             msg.ID,
			Type:           msg.Type,
			Content:        msg.Content,
			SentAt:         msg.SentAt.Format(time.RFC3339),
			SenderId:       msg.SenderID,
			SenderUsername: msg.SenderUsername,
		}
	}

	response := api.GetRoomMessagesResponse{
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateRoom")

	var req api.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ownerID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get owner ID")
		h.writeError(w, "failed to get owner ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateRoom(&req); err != nil {
		logger.Error(fmt.Sprintf("room validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("room validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var roomID int64
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		roomID, err = h.repository.CreateRoom(ctx, req.Name, req.Description, req.Type, ownerID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create room: %v", err))
			return err
		}

		if err := h.repository.AddRoomMember(ctx, roomID, ownerID); err != nil {
			logger.Error(fmt.Sprintf("failed to add room owner as member: %v", err))
			return err
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete room creation transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create room: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.CreateRoomResponse{
		Id: roomID,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteRoom")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	ownerID, err := h.repository.GetRoomOwner(r.Context(), roomID)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "room not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room owner: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get room owner: %v", err), http.StatusInternalServerError)
		return
	}

	if ownerID != userID {
		logger.Error(fmt.Sprintf("user %d is not the owner of room %d", userID, roomID))
		h.writeError(w, "only the room owner can delete the room", http.StatusForbidden)
		return
	}

	if err := h.repository.DeleteRoom(r.Context(), roomID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete room: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("JoinRoom")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.repository.AddRoomMember(r.Context(), roomID, userID); err != nil {
		logger.Error(fmt.Sprintf("failed to join room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to join room: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SearchRooms(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchRooms")

	term := r.URL.Query().Get("query")
	if term == "" {
		h.writeError(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	rooms, err := h.repository.SearchRooms(r.Context(), term, queryInt32(r, "limit", 20))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search rooms: %v", err))
		h.writeError(w, fmt.Sprintf("failed to search rooms: %v", err), http.StatusInternalServerError)
		return
	}

	apiRooms := make([]api.Room, len(*rooms))
	for i, room := range *rooms {
		apiRooms[i] = api.Room{
			Id:          room.ID,
			Name:        room.Name,
			Description: room.Description,
			Type:        room.Type,
			OwnerId:     room.OwnerID,
		}
	}

	h.writeJSON(w, api.SearchRoomsResponse{Rooms: apiRooms}, http.StatusOK)
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchUsers")

	term := r.URL.Query().Get("query")
	if term == "" {
		h.writeError(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	users, err := h.repository.SearchUsers(r.Context(), term, queryInt32(r, "limit", 20))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search users: %v", err))
		h.writeError(w, fmt.Sprintf("failed to search users: %v", err), http.StatusInternalServerError)
		return
	}

	apiUsers := make([]api.User, len(*users))
	for i, user := range *users {
		apiUsers[i] = api.User{
			Id:        user.ID,
			Username:  user.Username,
			AvatarUrl: user.AvatarURL,
		}
	}

	h.writeJSON(w, api.SearchUsersResponse{Users: apiUsers}, http.StatusOK)
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRoom")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	room, err := h.repository.GetRoom(r.Context(), roomID)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "room not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get room: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.Room{
		Id:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		Type:        room.Type,
		OwnerId:     room.OwnerID,
		CreatedAt:   room.CreatedAt.Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateRoom")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	var req api.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateUpdateRoom(&req); err != nil {
		logger.Error(fmt.Sprintf("room validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("room validation failed: %v", err), http.StatusBadRequest)
		return
	}

	ownerID, err := h.repository.GetRoomOwner(r.Context(), roomID)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "room not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room owner: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get room owner: %v", err), http.StatusInternalServerError)
		return
	}

	if ownerID != userID {
		logger.Error(fmt.Sprintf("user %d is not the owner of room %d", userID, roomID))
		h.writeError(w, "only the room owner can update the room", http.StatusForbidden)
		return
	}

	update := model.RoomUpdate{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
	}
	if err := h.repository.UpdateRoom(r.Context(), roomID, update); err != nil {
		if errors.Is(err, model.ErrConstraintViolation) {
			h.writeError(w, "room name is already taken", http.StatusConflict)
			return
		}
		logger.Error(fmt.Sprintf("failed to update room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update room: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetRoomUsers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRoomUsers")

	roomID, err := roomIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse room id: %v", err))
		h.writeError(w, "invalid room id", http.StatusBadRequest)
		return
	}

	offset := queryInt32(r, "offset", 0)
	limit := queryInt32(r, "limit", 20)

	members, err := h.repository.GetRoomUsers(r.Context(), roomID, offset, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room users: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get room users: %v", err), http.StatusInternalServerError)
		return
	}

	apiMembers := make([]api.RoomMember, len(*members))
	for i, member := range *members {
		apiMembers[i] = api.RoomMember{
			UserId:    member.UserID,
			Username:  member.Username,
			AvatarUrl: member.AvatarURL,
			IsOwner:   member.IsOwner,
		}
	}

	h.writeJSON(w, api.GetRoomUsersResponse{Users: apiMembers}, http.StatusOK)
}

func (h *Handler) GetFriends(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFriends")

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	friends, err := h.repository.GetFriends(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get friends: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get friends: %v", err), http.StatusInternalServerError)
		return
	}

	apiFriends := make([]api.User, len(*friends))
	for i, friend := range *friends {
		apiFriends[i] = api.User{
			Id:        friend.ID,
			Username:  friend.Username,
			AvatarUrl: friend.AvatarURL,
		}
	}

	h.writeJSON(w, api.GetFriendsResponse{Friends: apiFriends}, http.StatusOK)
}

func (h *Handler) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFriendRequests")

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	requests, err := h.repository.GetFriendRequests(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get friend requests: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get friend requests: %v", err), http.StatusInternalServerError)
		return
	}

	apiRequests := make([]api.FriendRequest, len(*requests))
	for i, request := range *requests {
		apiRequests[i] = api.FriendRequest{
			UserId:    request.UserID,
			Username:  request.Username,
			AvatarUrl: request.AvatarURL,
			SentAt:    request.SentAt.Format(time.RFC3339),
		}
	}

	h.writeJSON(w, api.GetFriendRequestsResponse{Requests: apiRequests}, http.StatusOK)
}

func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendFriendRequest")

	receiverID, err := userIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse user id: %v", err))
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if senderID == receiverID {
		h.writeError(w, "cannot send a friend request to yourself", http.StatusBadRequest)
		return
	}

	if err := h.repository.CreateFriendRequest(r.Context(), senderID, receiverID); err != nil {
		if errors.Is(err, model.ErrConstraintViolation) {
			h.writeError(w, "friend request already sent or user does not exist", http.StatusConflict)
			return
		}
		logger.Error(fmt.Sprintf("failed to create friend request: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create friend request: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.SendFriendRequestResponse{Message: "friend request sent"}, http.StatusCreated)
}

func (h *Handler) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AcceptFriendRequest")

	senderID, err := userIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse user id: %v", err))
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		deleted, err := h.repository.DeleteFriendRequest(ctx, senderID, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: friend request from %d", model.ErrNotFound, senderID)
		}

		// Friendship rows are symmetric; both directions are written so
		// friend listings need no OR clause.
		if err := h.repository.AddFriend(ctx, userID, senderID); err != nil {
			return err
		}
		return h.repository.AddFriend(ctx, senderID, userID)
	})

	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, "friend request not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to accept friend request: %v", err))
		h.writeError(w, fmt.Sprintf("failed to accept friend request: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RejectFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RejectFriendRequest")

	senderID, err := userIDFromRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse user id: %v", err))
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUserID).(int64)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	deleted, err := h.repository.DeleteFriendRequest(r.Context(), senderID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to reject friend request: %v", err))
		h.writeError(w, fmt.Sprintf("failed to reject friend request: %v", err), http.StatusInternalServerError)
		return
	}

	if !deleted {
		h.writeError(w, "friend request not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) requireMembership(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, roomID, userID int64) bool {
	isMember, err := h.repository.IsRoomMember(r.Context(), roomID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check room membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check room membership: %v", err), http.StatusInternalServerError)
		return false
	}

	if !isMember {
		logger.Error(fmt.Sprintf("user %d is not a member of room %d", userID, roomID))
		h.writeError(w, "user is not a member of the room", http.StatusForbidden)
		return false
	}

	return true
}

func roomIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "room_id"), 10, 64)
}

func userIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || value < 0 {
		return fallback
	}

	return int32(value)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
