package api

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"strings"

	domain "github.com/example/room-directory/domain/room"
	"github.com/example/room-directory/modules/directory"
	"github.com/example/room-directory/modules/session"
	"github.com/gofiber/fiber/v2"
)

const (
	// identityKey is the key used to store the resolved username in the
	// Fiber context. Empty means anonymous.
	identityKey = "identity"

	// HeaderClientRooms carries a base64 JSON room snapshot from the
	// client; a valid non-empty snapshot replaces the directory.
	HeaderClientRooms = "X-Client-Rooms"

	// HeaderServerRooms echoes the directory contents back to the
	// client, which persists them for its next request.
	HeaderServerRooms = "X-Server-Rooms"
)

// IdentityMiddleware resolves the Authorization header to a username.
// Resolution is best-effort: requests without a valid credential
// proceed as anonymous instead of being rejected.
func IdentityMiddleware(sessions session.SessionPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := ""

		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token != "" {
				resolved, err := sessions.ResolveToken(c.UserContext(), token)
				if err != nil {
					log.Printf("[api] token resolution failed: %v", err)
				} else {
					username = resolved
				}
			}
		}

		c.Locals(identityKey, username)
		return c.Next()
	}
}

// currentUser returns the username resolved by IdentityMiddleware, or
// the empty string for anonymous requests.
func currentUser(c *fiber.Ctx) string {
	username, _ := c.Locals(identityKey).(string)
	return username
}

// ClientSyncMiddleware implements the client-state replication channel:
// a valid non-empty X-Client-Rooms snapshot replaces the directory
// before the handler runs (last writer wins, no versioning), and the
// resulting directory contents are echoed in X-Server-Rooms after it.
// Malformed snapshots are skipped silently; they never fail a request.
func ClientSyncMiddleware(rooms directory.DirectoryPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if encoded := c.Get(HeaderClientRooms); encoded != "" {
			if snapshot, ok := decodeRoomSnapshot(encoded); ok {
				if err := rooms.ReplaceRooms(c.UserContext(), snapshot); err != nil {
					log.Printf("[api] client room sync failed: %v", err)
				}
			}
		}

		err := c.Next()

		if current, listErr := rooms.ListRooms(c.UserContext()); listErr == nil {
			if encoded, encErr := encodeRoomSnapshot(current); encErr == nil {
				c.Set(HeaderServerRooms, encoded)
			}
		} else {
			log.Printf("[api] failed to snapshot rooms for response header: %v", listErr)
		}

		return err
	}
}

// decodeRoomSnapshot decodes a base64 JSON room array. Empty arrays are
// rejected: they would wipe the directory on every fresh client.
func decodeRoomSnapshot(encoded string) ([]domain.Room, bool) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}

	var snapshot []domain.Room
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, false
	}
	if len(snapshot) == 0 {
		return nil, false
	}
	return snapshot, true
}

func encodeRoomSnapshot(rooms []domain.Room) (string, error) {
	if rooms == nil {
		rooms = []domain.Room{}
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
