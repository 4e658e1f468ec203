package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/example/room-directory/domain/room"
)

// Service implements the room directory business logic on top of a Store.
type Service struct {
	store Store
}

// NewService creates a new directory service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates input and adds a new room to the directory. An empty
// creator is recorded as anonymous. Duplicate names are allowed; the
// directory has never enforced name uniqueness.
func (s *Service) Create(_ context.Context, name, category, capacity, creator string) (*domain.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if creator == "" {
		creator = domain.CreatorAnonymous
	}

	now := time.Now()
	r := &domain.Room{
		ID:           domain.NewID(),
		Name:         name,
		Category:     domain.NormalizeCategory(category),
		Capacity:     domain.ParseCapacity(capacity),
		Participants: 0,
		Status:       domain.StatusActive,
		Creator:      creator,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Insert(r); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}
	return r, nil
}

// Get retrieves a room by id.
func (s *Service) Get(_ context.Context, id string) (*domain.Room, error) {
	return s.store.FindByID(id)
}

// Update applies an edit to a room. Only the creator may edit, except
// for system rooms which anyone may edit. Category and capacity keep
// their existing values when not supplied.
func (s *Service) Update(_ context.Context, id, requester, name, category, capacity string) (*domain.Room, error) {
	r, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !r.OwnedBy(requester) {
		return nil, ErrNotOwner
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}

	r.Name = name
	if strings.TrimSpace(category) != "" {
		r.Category = domain.NormalizeCategory(category)
	}
	if parsed := domain.ParseCapacity(capacity); parsed != nil {
		r.Capacity = parsed
	}
	r.UpdatedAt = time.Now()

	if err := s.store.Update(r); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return r, nil
}

// Delete removes a room, subject to the same ownership rule as Update.
func (s *Service) Delete(_ context.Context, id, requester string) (*domain.Room, error) {
	r, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !r.OwnedBy(requester) {
		return nil, ErrNotOwner
	}
	if err := s.store.Delete(id); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns every room in creation order.
func (s *Service) List(_ context.Context) ([]domain.Room, error) {
	return s.store.FindAll()
}

// Search matches room names case-insensitively as a substring. An empty
// query returns the full list.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Room, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}
	return s.store.SearchByName(query)
}

// Filter returns rooms with exactly the given category. An empty
// category returns the full list.
func (s *Service) Filter(ctx context.Context, category string) ([]domain.Room, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.List(ctx)
	}
	return s.store.FindByCategory(category)
}

// Replace swaps the full directory contents with a client-supplied
// snapshot. Last writer wins; there is no versioning on this channel.
func (s *Service) Replace(_ context.Context, rooms []domain.Room) error {
	return s.store.ReplaceAll(rooms)
}
