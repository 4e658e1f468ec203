package room

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// Categories understood by the directory. Anything else is stored as-is
// and rendered with the fallback badge style.
const (
	CategoryGeneral = "general"
	CategoryGaming  = "gaming"
	CategoryTech    = "tech"
	CategorySocial  = "social"
)

// Reserved creator names. Rooms created without an authenticated user
// belong to "anonymous"; rooms seeded by the server belong to "system"
// and are treated as unowned.
const (
	CreatorSystem    = "system"
	CreatorAnonymous = "anonymous"
)

// StatusActive is the only status the server ever assigns.
const StatusActive = "active"

// Room represents a chat-room record in the directory.
// JSON names match the wire format persisted by existing clients.
type Room struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	Name         string    `gorm:"not null;type:text" json:"name"`
	Category     string    `gorm:"type:text" json:"category"`
	Capacity     *int      `json:"capacity"`
	Participants int       `json:"participants"`
	Status       string    `gorm:"type:text" json:"status"`
	Creator      string    `gorm:"type:text" json:"creator"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the table name for the Room entity.
func (Room) TableName() string {
	return "rooms"
}

// OwnedBy reports whether username may edit or delete the room.
func (r *Room) OwnedBy(username string) bool {
	return r.Creator == username || r.Creator == CreatorSystem
}

var idMu sync.Mutex
var lastID int64

// NewID returns a timestamp-derived room id. Ids issued by the same
// process are strictly increasing even within one millisecond.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}

// NormalizeCategory returns the category to store for user input.
// Empty input falls back to the general category.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return CategoryGeneral
	}
	return category
}

// ParseCapacity parses a capacity field into a participant limit.
// Empty, malformed, and non-positive values all mean unlimited.
func ParseCapacity(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
