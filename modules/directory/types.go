package directory

import (
	"context"

	domain "github.com/example/room-directory/domain/room"
)

// CreateRoomRequest is the request for creating a room. Capacity comes
// in as the raw form value; the service parses it.
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Capacity string `json:"capacity"`
	Creator  string `json:"creator"`
}

// GetRoomRequest is the request for fetching a single room.
type GetRoomRequest struct {
	RoomID string `json:"room_id"`
}

// UpdateRoomRequest is the request for editing a room.
type UpdateRoomRequest struct {
	RoomID    string `json:"room_id"`
	Requester string `json:"requester"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Capacity  string `json:"capacity"`
}

// DeleteRoomRequest is the request for deleting a room.
type DeleteRoomRequest struct {
	RoomID    string `json:"room_id"`
	Requester string `json:"requester"`
}

// DeleteRoomResponse is the response for deleting a room.
type DeleteRoomResponse struct {
	Deleted bool `json:"deleted"`
}

// ListRoomsRequest is the request for listing all rooms.
type ListRoomsRequest struct{}

// ListRoomsResponse carries a set of rooms in creation order.
type ListRoomsResponse struct {
	Rooms []domain.Room `json:"rooms"`
	Total int           `json:"total"`
}

// SearchRoomsRequest is the request for a name search.
type SearchRoomsRequest struct {
	Query string `json:"query"`
}

// FilterRoomsRequest is the request for a category filter.
type FilterRoomsRequest struct {
	Category string `json:"category"`
}

// ReplaceRoomsRequest carries a client snapshot that replaces the
// directory contents wholesale.
type ReplaceRoomsRequest struct {
	Rooms []domain.Room `json:"rooms"`
}

// ReplaceRoomsResponse is the response for a directory replacement.
type ReplaceRoomsResponse struct {
	Replaced int `json:"replaced"`
}

// DirectoryPort is the interface driving adapters use to reach the
// directory module.
type DirectoryPort interface {
	CreateRoom(ctx context.Context, req *CreateRoomRequest) (*domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	UpdateRoom(ctx context.Context, req *UpdateRoomRequest) (*domain.Room, error)
	DeleteRoom(ctx context.Context, roomID, requester string) error
	ListRooms(ctx context.Context) ([]domain.Room, error)
	SearchRooms(ctx context.Context, query string) ([]domain.Room, error)
	FilterRooms(ctx context.Context, category string) ([]domain.Room, error)
	ReplaceRooms(ctx context.Context, rooms []domain.Room) error
}
