package api

import (
	"log"
	"strings"

	"github.com/example/room-directory/modules/directory"
	"github.com/example/room-directory/modules/session"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API. Success responses are
// HTML fragments for swapping; error bodies are JSON.
type Handlers struct {
	sessions session.SessionPort
	rooms    directory.DirectoryPort
	views    *Views
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sessions session.SessionPort, rooms directory.DirectoryPort) *Handlers {
	return &Handlers{
		sessions: sessions,
		rooms:    rooms,
		views:    NewViews(),
	}
}

// Login handles POST /login. Any non-empty username is accepted and
// gets a signed session token embedded in the returned fragment.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var form loginForm
	if err := c.BodyParser(&form); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Username is required",
		})
	}

	if strings.TrimSpace(form.Username) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Username is required",
		})
	}

	sess, err := h.sessions.Login(c.UserContext(), form.Username)
	if err != nil {
		if strings.Contains(err.Error(), session.ErrEmptyUsername.Error()) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Username is required",
			})
		}
		return h.internalError(c, err)
	}

	return h.sendFragment(c, fiber.StatusOK, func() (string, error) {
		return h.views.LoginSuccess(sess)
	})
}

// Logout handles POST /logout. It returns the login form fragment; the
// embedded script clears client-side state. The room store is untouched.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	return h.sendFragment(c, fiber.StatusOK, h.views.LoginForm)
}

// ListRooms handles GET /rooms.
func (h *Handlers) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.rooms.ListRooms(c.UserContext())
	if err != nil {
		return h.internalError(c, err)
	}

	return h.sendFragment(c, fiber.StatusOK, func() (string, error) {
		return h.views.RoomList(rooms, currentUser(c), placeholderNoRooms)
	})
}

// CreateRoom handles POST /rooms.
func (h *Handlers) CreateRoom(c *fiber.Ctx) error {
	var form roomForm
	if err := c.BodyParser(&form); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Room name is required",
		})
	}

	created, err := h.rooms.CreateRoom(c.UserContext(), &directory.CreateRoomRequest{
		Name:     form.RoomName,
		Category: form.Category,
		Capacity: form.Capacity,
		Creator:  currentUser(c),
	})
	if err != nil {
		return h.directoryError(c, err, "")
	}

	// Rendered as the creator so the new fragment shows its controls.
	return h.sendFragment(c, fiber.StatusCreated, func() (string, error) {
		return h.views.RoomItem(created, created.Creator)
	})
}

// GetRoom handles GET /rooms/:id.
func (h *Handlers) GetRoom(c *fiber.Ctx) error {
	found, err := h.rooms.GetRoom(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.directoryError(c, err, "")
	}

	return h.sendFragment(c, fiber.StatusOK, func() (string, error) {
		return h.views.RoomItem(found, currentUser(c))
	})
}

// UpdateRoom handles PUT /rooms/:id.
func (h *Handlers) UpdateRoom(c *fiber.Ctx) error {
	var form roomForm
	if err := c.BodyParser(&form); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Room name is required",
		})
	}

	updated, err := h.rooms.UpdateRoom(c.UserContext(), &directory.UpdateRoomRequest{
		RoomID:    c.Params("id"),
		Requester: currentUser(c),
		Name:      form.RoomName,
		Category:  form.Category,
		Capacity:  form.Capacity,
	})
	if err != nil {
		return h.directoryError(c, err, "You can only edit rooms you created")
	}

	return h.sendFragment(c, fiber.StatusOK, func() (string, error) {
		return h.views.RoomItem(updated, currentUser(c))
	})
}

// DeleteRoom handles DELETE /rooms/:id. The empty 200 body tells the
// client to remove the swapped element.
func (h *Handlers) DeleteRoom(c *fiber.Ctx) error {
	if err := h.rooms.DeleteRoom(c.UserContext(), c.Params("id"), currentUser(c)); err != nil {
		return h.directoryError(c, err, "You can only delete rooms you created")
	}

	c.Type("html")
	return c.Status(fiber.StatusOK).SendString("")
}

// EditForm handles GET /rooms/:id/edit. No store mutation.
func (h *Handlers) EditForm(c *fiber.Ctx) error {
	found, err := h.rooms.GetRoom(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.directoryError(c, err, "")
	}

	return h.sendFragment(c, fiber.StatusOK, func() (string, error) {
		return h.views.EditForm(found)
	})
}

// SearchRooms handles GET /rooms/search. An empty query returns the
// full list with the generic empty placeholder; a miss gets its own.
func (h *Handlers) SearchRooms(c *fiber.Ctx) error {
	query := c.Query("query")

	rooms, err := h.rooms.SearchRooms(c.UserContext(), query)
	if err != nil {
		return h.internalError(c, err)
	}

	placeholder := placeholderNoMatches
	if strings.TrimSpace(query) == "" {
		placeholder = placeholderNoRooms
	}

	return h.sendFragment(c, fiber.StatusOK, func() (string, error) {
		return h.views.RoomList(rooms, currentUser(c), placeholder)
	})
}

// FilterRooms handles GET /rooms/filter. An empty category returns the
// full list; an unknown category yields the placeholder, never an error.
func (h *Handlers) FilterRooms(c *fiber.Ctx) error {
	category := c.Query("category")

	rooms, err := h.rooms.FilterRooms(c.UserContext(), category)
	if err != nil {
		return h.internalError(c, err)
	}

	placeholder := placeholderNoInCategory
	if strings.TrimSpace(category) == "" {
		placeholder = placeholderNoRooms
	}

	return h.sendFragment(c, fiber.StatusOK, func() (string, error) {
		return h.views.RoomList(rooms, currentUser(c), placeholder)
	})
}

// sendFragment renders an HTML fragment and sends it with the given
// status, collapsing render failures into a 500.
func (h *Handlers) sendFragment(c *fiber.Ctx, status int, render func() (string, error)) error {
	html, err := render()
	if err != nil {
		return h.internalError(c, err)
	}
	c.Type("html")
	return c.Status(status).SendString(html)
}

// directoryError maps directory service errors to HTTP responses.
// Errors cross the service container as strings, so this matches on
// the sentinel messages.
func (h *Handlers) directoryError(c *fiber.Ctx, err error, forbiddenMessage string) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, directory.ErrRoomNotFound.Error()):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Room not found",
		})
	case strings.Contains(msg, directory.ErrNotOwner.Error()):
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
			Error: forbiddenMessage,
		})
	case strings.Contains(msg, directory.ErrEmptyRoomName.Error()):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Room name is required",
		})
	default:
		return h.internalError(c, err)
	}
}

func (h *Handlers) internalError(c *fiber.Ctx, err error) error {
	log.Printf("[api] Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "Internal server error",
	})
}
