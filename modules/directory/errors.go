package directory

import "errors"

// Sentinel errors for directory operations. The API layer matches on
// these messages because errors cross the service container as strings.
var (
	// ErrRoomNotFound is returned when the requested room does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrEmptyRoomName is returned when a room name is blank after trimming.
	ErrEmptyRoomName = errors.New("room name is required")

	// ErrNotOwner is returned when a requester tries to mutate a room
	// created by somebody else.
	ErrNotOwner = errors.New("not the room creator")
)
