package directory

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/room-directory/domain/room"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Room{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testRoom(name, category, creator string) *domain.Room {
	now := time.Now()
	return &domain.Room{
		ID:        domain.NewID(),
		Name:      name,
		Category:  category,
		Status:    domain.StatusActive,
		Creator:   creator,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_InsertAndFindByID(t *testing.T) {
	store := NewStore(setupTestDB(t))

	room := testRoom("Test Room", domain.CategoryGaming, "alice")
	if err := store.Insert(room); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	found, err := store.FindByID(room.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Name != "Test Room" {
		t.Errorf("found.Name = %q, want %q", found.Name, "Test Room")
	}
	if found.Category != domain.CategoryGaming {
		t.Errorf("found.Category = %q, want %q", found.Category, domain.CategoryGaming)
	}
	if found.Creator != "alice" {
		t.Errorf("found.Creator = %q, want %q", found.Creator, "alice")
	}
}

func TestStore_FindByIDNotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if _, err := store.FindByID("missing"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("FindByID() error = %v, want %v", err, ErrRoomNotFound)
	}
}

func TestStore_Update(t *testing.T) {
	store := NewStore(setupTestDB(t))

	room := testRoom("Before", domain.CategoryGeneral, "alice")
	if err := store.Insert(room); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	room.Name = "After"
	room.Category = domain.CategoryTech
	if err := store.Update(room); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := store.FindByID(room.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Name != "After" {
		t.Errorf("found.Name = %q, want %q", found.Name, "After")
	}
	if found.Category != domain.CategoryTech {
		t.Errorf("found.Category = %q, want %q", found.Category, domain.CategoryTech)
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(setupTestDB(t))

	room := testRoom("Doomed", domain.CategoryGeneral, "alice")
	if err := store.Insert(room); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := store.Delete(room.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.FindByID(room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("FindByID() after delete error = %v, want %v", err, ErrRoomNotFound)
	}
}

func TestStore_DeleteNotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if err := store.Delete("missing"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Delete() error = %v, want %v", err, ErrRoomNotFound)
	}
}

func TestStore_FindAllOrdering(t *testing.T) {
	store := NewStore(setupTestDB(t))

	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		room := testRoom(name, domain.CategoryGeneral, "alice")
		room.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		if err := store.Insert(room); err != nil {
			t.Fatalf("Insert(%q) error = %v", name, err)
		}
	}

	rooms, err := store.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(rooms) != len(names) {
		t.Fatalf("FindAll() returned %d rooms, want %d", len(rooms), len(names))
	}
	for i, name := range names {
		if rooms[i].Name != name {
			t.Errorf("rooms[%d].Name = %q, want %q", i, rooms[i].Name, name)
		}
	}
}

func TestStore_SearchByName(t *testing.T) {
	store := NewStore(setupTestDB(t))

	for _, name := range []string{"General Chat", "Gaming Discussion", "Tech Talk"} {
		if err := store.Insert(testRoom(name, domain.CategoryGeneral, "alice")); err != nil {
			t.Fatalf("Insert(%q) error = %v", name, err)
		}
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"chat", []string{"General Chat"}},
		{"GAMING", []string{"Gaming Discussion"}},
		{"a", []string{"General Chat", "Gaming Discussion", "Tech Talk"}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		rooms, err := store.SearchByName(tt.query)
		if err != nil {
			t.Fatalf("SearchByName(%q) error = %v", tt.query, err)
		}
		if len(rooms) != len(tt.want) {
			t.Errorf("SearchByName(%q) returned %d rooms, want %d", tt.query, len(rooms), len(tt.want))
			continue
		}
		for i, name := range tt.want {
			if rooms[i].Name != name {
				t.Errorf("SearchByName(%q)[%d].Name = %q, want %q", tt.query, i, rooms[i].Name, name)
			}
		}
	}
}

func TestStore_FindByCategory(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if err := store.Insert(testRoom("General Chat", domain.CategoryGeneral, "alice")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := store.Insert(testRoom("Gaming Discussion", domain.CategoryGaming, "alice")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	rooms, err := store.FindByCategory(domain.CategoryGaming)
	if err != nil {
		t.Fatalf("FindByCategory() error = %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Gaming Discussion" {
		t.Errorf("FindByCategory() = %+v, want single Gaming Discussion", rooms)
	}

	rooms, err = store.FindByCategory(domain.CategorySocial)
	if err != nil {
		t.Fatalf("FindByCategory() error = %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("FindByCategory() returned %d rooms, want 0", len(rooms))
	}
}

func TestStore_ReplaceAll(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if err := store.Insert(testRoom("Old Room", domain.CategoryGeneral, "alice")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	replacement := []domain.Room{
		*testRoom("New Room A", domain.CategoryTech, "bob"),
		*testRoom("New Room B", domain.CategorySocial, "bob"),
	}
	if err := store.ReplaceAll(replacement); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	rooms, err := store.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("FindAll() returned %d rooms, want 2", len(rooms))
	}
	if rooms[0].Name != "New Room A" || rooms[1].Name != "New Room B" {
		t.Errorf("FindAll() = [%q, %q], want replacement rooms", rooms[0].Name, rooms[1].Name)
	}
}

func TestStore_ReplaceAllEmpty(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if err := store.Insert(testRoom("Old Room", domain.CategoryGeneral, "alice")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := store.ReplaceAll(nil); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}
}

func TestStore_Count(t *testing.T) {
	store := NewStore(setupTestDB(t))

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	if err := store.Insert(testRoom("Room", domain.CategoryGeneral, "alice")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	count, err = store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}
