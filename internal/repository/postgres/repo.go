package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/chat-api/internal/config"
	"github.com/s21platform/chat-api/internal/model"
)

type txKey string

const keyConnection = txKey("tx_connection")

type database interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyConnection, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// Chk returns the transaction bound to ctx if one is open, the pooled
// connection otherwise.
func (r *Repository) Chk(ctx context.Context) database {
	if tx, ok := ctx.Value(keyConnection).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

// InsertMessages persists a batch of rows in one statement: either every
// row is committed or none. sent_at is assigned by the database default.
func (r *Repository) InsertMessages(ctx context.Context, rows []model.MessageRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := sq.Insert("messages").
		Columns("sender_id", "room_id", "type", "content").
		PlaceholderFormat(sq.Dollar)

	for _, row := range rows {
		query = query.Values(row.SenderID, row.RoomID, row.Type, row.Content)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)
	if err != nil {
		return wrapInsertError(err)
	}

	return nil
}

func (r *Repository) InsertMessage(ctx context.Context, row model.MessageRow) error {
	query, args, err := sq.Insert("messages").
		Columns("sender_id", "room_id", "type", "content").
		Values(row.SenderID, row.RoomID, row.Type, row.Content).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return wrapInsertError(err)
	}

	return nil
}

func wrapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("%w: %v", model.ErrConstraintViolation, err)
	}
	return fmt.Errorf("failed to insert messages: %v", err)
}

func wrapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("%w: %v", model.ErrConstraintViolation, err)
	}
	return err
}

func (r *Repository) GetRoomRecentMessages(ctx context.Context, roomID int64, offset, limit int32) (*model.RoomMessageList, error) {
	queryBuilder := sq.Select(
		"m.id",
		"m.type",
		"m.content",
		"m.sent_at",
		"u.id AS sender_id",
		"u.username AS sender_username",
	).
		From("messages m").
		Join("users u ON u.id = m.sender_id").
		Where(sq.Eq{"m.room_id": roomID}).
		OrderBy("m.sent_at DESC").
		Offset(uint64(offset))

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(50) // дефолтный лимит
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.RoomMessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return &messages, nil
}

func (r *Repository) IsRoomMember(ctx context.Context, roomID, userID int64) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("chat_room_users").
		Where(sq.And{
			sq.Eq{"room_id": roomID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isMember bool
	err = r.Chk(ctx).GetContext(ctx, &isMember, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check room membership: %v", err)
	}

	return isMember, nil
}

func (r *Repository) CreateRoom(ctx context.Context, name, description, roomType string, ownerID int64) (int64, error) {
	query, args, err := sq.Insert("chat_rooms").
		Columns("name", "description", "type", "owner_id").
		Values(name, description, roomType, ownerID).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var roomID int64
	err = r.Chk(ctx).GetContext(ctx, &roomID, query, args...)
	if err != nil {
		return 0, err
	}

	return roomID, nil
}

func (r *Repository) AddRoomMember(ctx context.Context, roomID, userID int64) error {
	query, args, err := sq.Insert("chat_room_users").
		Columns("room_id", "user_id").
		Values(roomID, userID).
		Suffix("ON CONFLICT (room_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetRoomOwner(ctx context.Context, roomID int64) (int64, error) {
	query, args, err := sq.Select("owner_id").
		From("chat_rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ownerID int64
	err = r.Chk(ctx).GetContext(ctx, &ownerID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: room %d", model.ErrNotFound, roomID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get room owner: %v", err)
	}

	return ownerID, nil
}

func (r *Repository) GetRoom(ctx context.Context, roomID int64) (*model.Room, error) {
	query, args, err := sq.Select("id", "name", "description", "type", "owner_id", "created_at").
		From("chat_rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.Room
	err = r.Chk(ctx).GetContext(ctx, &room, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: room %d", model.ErrNotFound, roomID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %v", err)
	}

	return &room, nil
}

func (r *Repository) UpdateRoom(ctx context.Context, roomID int64, update model.RoomUpdate) error {
	queryBuilder := sq.Update("chat_rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		queryBuilder = queryBuilder.Set("name", *update.Name)
	}
	if update.Description != nil {
		queryBuilder = queryBuilder.Set("description", *update.Description)
	}
	if update.Type != nil {
		queryBuilder = queryBuilder.Set("type", *update.Type)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return wrapConstraintError(err)
	}

	return nil
}

func (r *Repository) GetRoomUsers(ctx context.Context, roomID int64, offset, limit int32) (*model.RoomMemberList, error) {
	query, args, err := sq.Select(
		"u.id AS user_id",
		"u.username",
		"u.avatar_url",
		"u.id = r.owner_id AS is_owner",
	).
		From("chat_room_users cru").
		Join("users u ON u.id = cru.user_id").
		Join("chat_rooms r ON r.id = cru.room_id").
		Where(sq.Eq{"cru.room_id": roomID}).
		OrderBy("u.username").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var members model.RoomMemberList
	err = r.Chk(ctx).SelectContext(ctx, &members, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get room users: %v", err)
	}

	return &members, nil
}

func (r *Repository) DeleteRoom(ctx context.Context, roomID int64) error {
	query, args, err := sq.Delete("chat_rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) SearchRooms(ctx context.Context, term string, limit int32) (*model.RoomList, error) {
	query, args, err := sq.Select("id", "name", "description", "type", "owner_id", "created_at").
		From("chat_rooms").
		Where(sq.ILike{"name": "%" + term + "%"}).
		Where(sq.NotEq{"type": model.PrivateRoomType}).
		OrderBy("name").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rooms model.RoomList
	err = r.Chk(ctx).SelectContext(ctx, &rooms, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search rooms: %v", err)
	}

	return &rooms, nil
}

func (r *Repository) SearchUsers(ctx context.Context, term string, limit int32) (*model.UserList, error) {
	query, args, err := sq.Select("id", "username", "avatar_url").
		From("users").
		Where(sq.ILike{"username": "%" + term + "%"}).
		OrderBy("username").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var users model.UserList
	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %v", err)
	}

	return &users, nil
}

// CreateFriendRequest inserts a pending request. A duplicate request or a
// missing target user surfaces as model.ErrConstraintViolation.
func (r *Repository) CreateFriendRequest(ctx context.Context, senderID, receiverID int64) error {
	query, args, err := sq.Insert("friend_requests").
		Columns("sender_id", "receiver_id").
		Values(senderID, receiverID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return wrapConstraintError(err)
	}

	return nil
}

// DeleteFriendRequest removes a pending request and reports whether one
// existed.
func (r *Repository) DeleteFriendRequest(ctx context.Context, senderID, receiverID int64) (bool, error) {
	query, args, err := sq.Delete("friend_requests").
		Where(sq.And{
			sq.Eq{"sender_id": senderID},
			sq.Eq{"receiver_id": receiverID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete friend request: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected > 0, nil
}

func (r *Repository) AddFriend(ctx context.Context, userID, friendID int64) error {
	query, args, err := sq.Insert("friends").
		Columns("user_id", "friend_id").
		Values(userID, friendID).
		Suffix("ON CONFLICT (user_id, friend_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetFriends(ctx context.Context, userID int64) (*model.UserList, error) {
	query, args, err := sq.Select("u.id", "u.username", "u.avatar_url").
		From("friends f").
		Join("users u ON u.id = f.friend_id").
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("u.username").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var friends model.UserList
	err = r.Chk(ctx).SelectContext(ctx, &friends, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %v", err)
	}

	return &friends, nil
}

func (r *Repository) GetFriendRequests(ctx context.Context, userID int64) (*model.FriendRequestList, error) {
	query, args, err := sq.Select(
		"fr.sender_id AS user_id",
		"u.username",
		"u.avatar_url",
		"fr.sent_at",
	).
		From("friend_requests fr").
		Join("users u ON u.id = fr.sender_id").
		Where(sq.Eq{"fr.receiver_id": userID}).
		OrderBy("fr.sent_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var requests model.FriendRequestList
	err = r.Chk(ctx).SelectContext(ctx, &requests, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get friend requests: %v", err)
	}

	return &requests, nil
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userID int64, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("username", newNickname).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
