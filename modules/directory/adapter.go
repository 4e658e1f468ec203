package directory

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/room-directory/domain/room"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// directoryAdapter wraps ServiceContainer for type-safe cross-module
// communication. It implements the DirectoryPort interface.
type directoryAdapter struct {
	container mono.ServiceContainer
}

// NewDirectoryAdapter creates a new adapter for directory services.
// container is the ServiceContainer from the directory module received
// via SetDependencyServiceContainer.
func NewDirectoryAdapter(container mono.ServiceContainer) DirectoryPort {
	if container == nil {
		panic("directory adapter requires non-nil ServiceContainer")
	}
	return &directoryAdapter{container: container}
}

// CreateRoom creates a new room via the create-room service.
func (a *directoryAdapter) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*domain.Room, error) {
	var resp domain.Room
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-room",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create-room service call failed: %w", err)
	}
	return &resp, nil
}

// GetRoom retrieves a room by id via the get-room service.
func (a *directoryAdapter) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	req := GetRoomRequest{RoomID: roomID}
	var resp domain.Room
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-room",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-room service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateRoom edits a room via the update-room service.
func (a *directoryAdapter) UpdateRoom(ctx context.Context, req *UpdateRoomRequest) (*domain.Room, error) {
	var resp domain.Room
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-room",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("update-room service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteRoom removes a room via the delete-room service.
func (a *directoryAdapter) DeleteRoom(ctx context.Context, roomID, requester string) error {
	req := DeleteRoomRequest{RoomID: roomID, Requester: requester}
	var resp DeleteRoomResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-room",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("delete-room service call failed: %w", err)
	}
	if !resp.Deleted {
		return fmt.Errorf("room not deleted: %s", roomID)
	}
	return nil
}

// ListRooms lists all rooms via the list-rooms service.
func (a *directoryAdapter) ListRooms(ctx context.Context) ([]domain.Room, error) {
	req := ListRoomsRequest{}
	var resp ListRoomsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-rooms",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-rooms service call failed: %w", err)
	}
	return resp.Rooms, nil
}

// SearchRooms searches room names via the search-rooms service.
func (a *directoryAdapter) SearchRooms(ctx context.Context, query string) ([]domain.Room, error) {
	req := SearchRoomsRequest{Query: query}
	var resp ListRoomsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"search-rooms",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("search-rooms service call failed: %w", err)
	}
	return resp.Rooms, nil
}

// FilterRooms filters rooms by category via the filter-rooms service.
func (a *directoryAdapter) FilterRooms(ctx context.Context, category string) ([]domain.Room, error) {
	req := FilterRoomsRequest{Category: category}
	var resp ListRoomsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"filter-rooms",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("filter-rooms service call failed: %w", err)
	}
	return resp.Rooms, nil
}

// ReplaceRooms swaps the directory contents via the replace-rooms service.
func (a *directoryAdapter) ReplaceRooms(ctx context.Context, rooms []domain.Room) error {
	req := ReplaceRoomsRequest{Rooms: rooms}
	var resp ReplaceRoomsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"replace-rooms",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("replace-rooms service call failed: %w", err)
	}
	return nil
}
