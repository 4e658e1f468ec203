package api

import (
	"context"
	"errors"
	"time"

	domain "github.com/example/room-directory/domain/room"
	"github.com/example/room-directory/modules/directory"
	"github.com/example/room-directory/modules/session"
)

// mockSessionPort implements session.SessionPort for testing.
type mockSessionPort struct {
	loginFunc        func(ctx context.Context, username string) (*session.LoginResponse, error)
	resolveTokenFunc func(ctx context.Context, token string) (string, error)
}

func (m *mockSessionPort) Login(ctx context.Context, username string) (*session.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username)
	}
	return &session.LoginResponse{
		Username:   username,
		UserID:     "test-user-id",
		LoggedInAt: time.Now(),
		Token:      "test-token",
		ExpiresIn:  3600,
	}, nil
}

func (m *mockSessionPort) ResolveToken(ctx context.Context, token string) (string, error) {
	if m.resolveTokenFunc != nil {
		return m.resolveTokenFunc(ctx, token)
	}
	return "", nil
}

// mockDirectoryPort implements directory.DirectoryPort for testing.
type mockDirectoryPort struct {
	createRoomFunc   func(ctx context.Context, req *directory.CreateRoomRequest) (*domain.Room, error)
	getRoomFunc      func(ctx context.Context, roomID string) (*domain.Room, error)
	updateRoomFunc   func(ctx context.Context, req *directory.UpdateRoomRequest) (*domain.Room, error)
	deleteRoomFunc   func(ctx context.Context, roomID, requester string) error
	listRoomsFunc    func(ctx context.Context) ([]domain.Room, error)
	searchRoomsFunc  func(ctx context.Context, query string) ([]domain.Room, error)
	filterRoomsFunc  func(ctx context.Context, category string) ([]domain.Room, error)
	replaceRoomsFunc func(ctx context.Context, rooms []domain.Room) error
}

func (m *mockDirectoryPort) CreateRoom(ctx context.Context, req *directory.CreateRoomRequest) (*domain.Room, error) {
	if m.createRoomFunc != nil {
		return m.createRoomFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDirectoryPort) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	if m.getRoomFunc != nil {
		return m.getRoomFunc(ctx, roomID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDirectoryPort) UpdateRoom(ctx context.Context, req *directory.UpdateRoomRequest) (*domain.Room, error) {
	if m.updateRoomFunc != nil {
		return m.updateRoomFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDirectoryPort) DeleteRoom(ctx context.Context, roomID, requester string) error {
	if m.deleteRoomFunc != nil {
		return m.deleteRoomFunc(ctx, roomID, requester)
	}
	return errors.New("not implemented")
}

func (m *mockDirectoryPort) ListRooms(ctx context.Context) ([]domain.Room, error) {
	if m.listRoomsFunc != nil {
		return m.listRoomsFunc(ctx)
	}
	return []domain.Room{}, nil
}

func (m *mockDirectoryPort) SearchRooms(ctx context.Context, query string) ([]domain.Room, error) {
	if m.searchRoomsFunc != nil {
		return m.searchRoomsFunc(ctx, query)
	}
	return []domain.Room{}, nil
}

func (m *mockDirectoryPort) FilterRooms(ctx context.Context, category string) ([]domain.Room, error) {
	if m.filterRoomsFunc != nil {
		return m.filterRoomsFunc(ctx, category)
	}
	return []domain.Room{}, nil
}

func (m *mockDirectoryPort) ReplaceRooms(ctx context.Context, rooms []domain.Room) error {
	if m.replaceRoomsFunc != nil {
		return m.replaceRoomsFunc(ctx, rooms)
	}
	return nil
}

func sampleRoom(id, name, category, creator string) domain.Room {
	now := time.Now()
	return domain.Room{
		ID:        id,
		Name:      name,
		Category:  category,
		Status:    domain.StatusActive,
		Creator:   creator,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
