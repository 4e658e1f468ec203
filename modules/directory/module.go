package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	domain "github.com/example/room-directory/domain/room"
	"github.com/example/room-directory/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DirectoryModule provides the room directory services.
type DirectoryModule struct {
	db       *gorm.DB
	service  *Service
	eventBus mono.EventBus
	dbPath   string
}

// Compile-time interface checks.
var _ mono.Module = (*DirectoryModule)(nil)
var _ mono.ServiceProviderModule = (*DirectoryModule)(nil)
var _ mono.EventEmitterModule = (*DirectoryModule)(nil)
var _ mono.HealthCheckableModule = (*DirectoryModule)(nil)

// NewModule creates a new DirectoryModule.
func NewModule() *DirectoryModule {
	dbPath := os.Getenv("ROOM_DB_PATH")
	if dbPath == "" {
		dbPath = "rooms.db"
	}
	return &DirectoryModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *DirectoryModule) Name() string {
	return "directory"
}

// SetEventBus receives the application event bus.
func (m *DirectoryModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *DirectoryModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.RoomCreatedV1.ToBase(),
		events.RoomUpdatedV1.ToBase(),
		events.RoomDeletedV1.ToBase(),
	}
}

// Start opens the database, seeds the directory, and builds the service.
func (m *DirectoryModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Room{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	store := NewStore(db)
	m.service = NewService(store)

	if err := seedRooms(store); err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Printf("[directory] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *DirectoryModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[directory] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *DirectoryModule) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *DirectoryModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-room", json.Unmarshal, json.Marshal, m.handleCreateRoom,
	); err != nil {
		return fmt.Errorf("failed to register create-room service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-room", json.Unmarshal, json.Marshal, m.handleGetRoom,
	); err != nil {
		return fmt.Errorf("failed to register get-room service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-room", json.Unmarshal, json.Marshal, m.handleUpdateRoom,
	); err != nil {
		return fmt.Errorf("failed to register update-room service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-room", json.Unmarshal, json.Marshal, m.handleDeleteRoom,
	); err != nil {
		return fmt.Errorf("failed to register delete-room service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-rooms", json.Unmarshal, json.Marshal, m.handleListRooms,
	); err != nil {
		return fmt.Errorf("failed to register list-rooms service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "search-rooms", json.Unmarshal, json.Marshal, m.handleSearchRooms,
	); err != nil {
		return fmt.Errorf("failed to register search-rooms service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "filter-rooms", json.Unmarshal, json.Marshal, m.handleFilterRooms,
	); err != nil {
		return fmt.Errorf("failed to register filter-rooms service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "replace-rooms", json.Unmarshal, json.Marshal, m.handleReplaceRooms,
	); err != nil {
		return fmt.Errorf("failed to register replace-rooms service: %w", err)
	}

	log.Printf("[directory] Registered services: create-room, get-room, update-room, delete-room, list-rooms, search-rooms, filter-rooms, replace-rooms")
	return nil
}

// handleCreateRoom handles the create-room service request.
func (m *DirectoryModule) handleCreateRoom(ctx context.Context, req CreateRoomRequest, _ *mono.Msg) (domain.Room, error) {
	r, err := m.service.Create(ctx, req.Name, req.Category, req.Capacity, req.Creator)
	if err != nil {
		return domain.Room{}, err
	}

	if m.eventBus != nil {
		event := events.RoomCreatedEvent{
			RoomID:    r.ID,
			Name:      r.Name,
			Category:  r.Category,
			Creator:   r.Creator,
			CreatedAt: r.CreatedAt,
		}
		if err := events.RoomCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[directory] Warning: failed to publish RoomCreated event for room %s: %v", r.ID, err)
		}
	}

	return *r, nil
}

// handleGetRoom handles the get-room service request.
func (m *DirectoryModule) handleGetRoom(ctx context.Context, req GetRoomRequest, _ *mono.Msg) (domain.Room, error) {
	r, err := m.service.Get(ctx, req.RoomID)
	if err != nil {
		return domain.Room{}, err
	}
	return *r, nil
}

// handleUpdateRoom handles the update-room service request.
func (m *DirectoryModule) handleUpdateRoom(ctx context.Context, req UpdateRoomRequest, _ *mono.Msg) (domain.Room, error) {
	r, err := m.service.Update(ctx, req.RoomID, req.Requester, req.Name, req.Category, req.Capacity)
	if err != nil {
		return domain.Room{}, err
	}

	if m.eventBus != nil {
		event := events.RoomUpdatedEvent{
			RoomID:    r.ID,
			Name:      r.Name,
			Category:  r.Category,
			UpdatedAt: r.UpdatedAt,
		}
		if err := events.RoomUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[directory] Warning: failed to publish RoomUpdated event for room %s: %v", r.ID, err)
		}
	}

	return *r, nil
}

// handleDeleteRoom handles the delete-room service request.
func (m *DirectoryModule) handleDeleteRoom(ctx context.Context, req DeleteRoomRequest, _ *mono.Msg) (DeleteRoomResponse, error) {
	r, err := m.service.Delete(ctx, req.RoomID, req.Requester)
	if err != nil {
		return DeleteRoomResponse{Deleted: false}, err
	}

	if m.eventBus != nil {
		event := events.RoomDeletedEvent{
			RoomID:    r.ID,
			Creator:   r.Creator,
			DeletedAt: time.Now(),
		}
		if err := events.RoomDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[directory] Warning: failed to publish RoomDeleted event for room %s: %v", r.ID, err)
		}
	}

	return DeleteRoomResponse{Deleted: true}, nil
}

// handleListRooms handles the list-rooms service request.
func (m *DirectoryModule) handleListRooms(ctx context.Context, _ ListRoomsRequest, _ *mono.Msg) (ListRoomsResponse, error) {
	rooms, err := m.service.List(ctx)
	if err != nil {
		return ListRoomsResponse{}, err
	}
	return ListRoomsResponse{Rooms: rooms, Total: len(rooms)}, nil
}

// handleSearchRooms handles the search-rooms service request.
func (m *DirectoryModule) handleSearchRooms(ctx context.Context, req SearchRoomsRequest, _ *mono.Msg) (ListRoomsResponse, error) {
	rooms, err := m.service.Search(ctx, req.Query)
	if err != nil {
		return ListRoomsResponse{}, err
	}
	return ListRoomsResponse{Rooms: rooms, Total: len(rooms)}, nil
}

// handleFilterRooms handles the filter-rooms service request.
func (m *DirectoryModule) handleFilterRooms(ctx context.Context, req FilterRoomsRequest, _ *mono.Msg) (ListRoomsResponse, error) {
	rooms, err := m.service.Filter(ctx, req.Category)
	if err != nil {
		return ListRoomsResponse{}, err
	}
	return ListRoomsResponse{Rooms: rooms, Total: len(rooms)}, nil
}

// handleReplaceRooms handles the replace-rooms service request.
func (m *DirectoryModule) handleReplaceRooms(ctx context.Context, req ReplaceRoomsRequest, _ *mono.Msg) (ReplaceRoomsResponse, error) {
	if err := m.service.Replace(ctx, req.Rooms); err != nil {
		return ReplaceRoomsResponse{}, err
	}
	return ReplaceRoomsResponse{Replaced: len(req.Rooms)}, nil
}

// seedRooms inserts the default rooms on first start.
func seedRooms(store Store) error {
	count, err := store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	cap50 := 50
	cap20 := 20
	seeds := []domain.Room{
		{
			ID:        "1",
			Name:      "General Chat",
			Category:  domain.CategoryGeneral,
			Capacity:  &cap50,
			Status:    domain.StatusActive,
			Creator:   domain.CreatorSystem,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Gaming Discussion",
			Category:  domain.CategoryGaming,
			Capacity:  &cap20,
			Status:    domain.StatusActive,
			Creator:   domain.CreatorSystem,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for i := range seeds {
		if err := store.Insert(&seeds[i]); err != nil {
			return err
		}
	}

	log.Printf("[directory] Seeded %d default rooms", len(seeds))
	return nil
}
