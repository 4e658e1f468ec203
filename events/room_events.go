package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// RoomCreatedEvent is emitted when a room is added to the directory.
type RoomCreatedEvent struct {
	RoomID    string    `json:"room_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomCreatedV1 is the typed event definition for room creation.
// Subject: events.room.v1.room-created
var RoomCreatedV1 = helper.EventDefinition[RoomCreatedEvent](
	"room", "RoomCreated", "v1",
)

// RoomUpdatedEvent is emitted when a room's metadata changes.
type RoomUpdatedEvent struct {
	RoomID    string    `json:"room_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomUpdatedV1 is the typed event definition for room updates.
// Subject: events.room.v1.room-updated
var RoomUpdatedV1 = helper.EventDefinition[RoomUpdatedEvent](
	"room", "RoomUpdated", "v1",
)

// RoomDeletedEvent is emitted when a room is removed from the directory.
type RoomDeletedEvent struct {
	RoomID    string    `json:"room_id"`
	Creator   string    `json:"creator"`
	DeletedAt time.Time `json:"deleted_at"`
}

// RoomDeletedV1 is the typed event definition for room deletion.
// Subject: events.room.v1.room-deleted
var RoomDeletedV1 = helper.EventDefinition[RoomDeletedEvent](
	"room", "RoomDeleted", "v1",
)
