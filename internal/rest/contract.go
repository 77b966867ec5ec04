//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/chat-api/internal/api"
	"github.com/s21platform/chat-api/internal/model"
)

type DBRepo interface {
	GetRoomRecentMessages(ctx context.Context, roomID int64, offset, limit int32) (*model.RoomMessageList, error)
	IsRoomMember(ctx context.Context, roomID, userID int64) (bool, error)
	CreateRoom(ctx context.Context, name, description, roomType string, ownerID int64) (int64, error)
	GetRoom(ctx context.Context, roomID int64) (*model.Room, error)
	UpdateRoom(ctx context.Context, roomID int64, update model.RoomUpdate) error
	GetRoomUsers(ctx context.Context, roomID int64, offset, limit int32) (*model.RoomMemberList, error)
	AddRoomMember(ctx context.Context, roomID, userID int64) error
	GetRoomOwner(ctx context.Context, roomID int64) (int64, error)
	DeleteRoom(ctx context.Context, roomID int64) error
	SearchRooms(ctx context.Context, term string, limit int32) (*model.RoomList, error)
	SearchUsers(ctx context.Context, term string, limit int32) (*model.UserList, error)

	CreateFriendRequest(ctx context.Context, senderID, receiverID int64) error
	DeleteFriendRequest(ctx context.Context, senderID, receiverID int64) (bool, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) (*model.UserList, error)
	GetFriendRequests(ctx context.Context, userID int64) (*model.FriendRequestList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type MessagePipeline interface {
	Upload(ctx context.Context, message model.Message) error
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateAttachment(filename string, data []byte) error
	ValidateCreateRoom(req *api.CreateRoomRequest) error
	ValidateUpdateRoom(req *api.UpdateRoomRequest) error
}
