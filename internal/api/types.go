// Package api holds the request and response shapes of the REST surface.
package api

type Error struct {
	Error string `json:"error"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// SendMessageResponse acknowledges acceptance into the pipeline, not
// durable storage. MessageId correlates failure events with the request.
type SendMessageResponse struct {
	MessageId string `json:"message_id"`
}

type CreateRoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

type CreateRoomResponse struct {
	Id int64 `json:"id"`
}

type Message struct {
	Id             int64  `json:"id"`
	Type           string `json:"type"`
	Content        string `json:"content"`
	SentAt         string `json:"sent_at"`
	SenderId       int64  `json:"sender_id"`
	SenderUsername string `json:"sender_username"`
}

type GetRoomMessagesResponse struct {
	Messages []Message `json:"messages"`
}

type Room struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	OwnerId     int64   `json:"owner_id"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type UpdateRoomRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
}

type RoomMember struct {
	UserId    int64  `json:"user_id"`
	Username  string `json:"username"`
	AvatarUrl string `json:"avatar_url"`
	IsOwner   bool   `json:"is_owner"`
}

type GetRoomUsersResponse struct {
	Users []RoomMember `json:"users"`
}

type SearchRoomsResponse struct {
	Rooms []Room `json:"rooms"`
}

type User struct {
	Id        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarUrl string `json:"avatar_url"`
}

type SearchUsersResponse struct {
	Users []User `json:"users"`
}

type GetFriendsResponse struct {
	Friends []User `json:"friends"`
}

type FriendRequest struct {
	UserId    int64  `json:"user_id"`
	Username  string `json:"username"`
	AvatarUrl string `json:"avatar_url"`
	SentAt    string `json:"sent_at"`
}

type GetFriendRequestsResponse struct {
	Requests []FriendRequest `json:"requests"`
}

type SendFriendRequestResponse struct {
	Message string `json:"message"`
}
