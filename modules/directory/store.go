package directory

import (
	"errors"
	"strings"

	domain "github.com/example/room-directory/domain/room"
	"gorm.io/gorm"
)

// Store is the persistence abstraction for room records. Handlers never
// touch storage directly; they go through the service, which goes
// through this interface.
type Store interface {
	Insert(r *domain.Room) error
	FindByID(id string) (*domain.Room, error)
	Update(r *domain.Room) error
	Delete(id string) error
	FindAll() ([]domain.Room, error)
	SearchByName(query string) ([]domain.Room, error)
	FindByCategory(category string) ([]domain.Room, error)
	ReplaceAll(rooms []domain.Room) error
	Count() (int64, error)
}

// gormStore persists rooms with GORM. Listing order is creation order,
// which matches the append-only list the original clients expect.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed room store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Insert(r *domain.Room) error {
	return s.db.Create(r).Error
}

func (s *gormStore) FindByID(id string) (*domain.Room, error) {
	var r domain.Room
	result := s.db.First(&r, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, result.Error
	}
	return &r, nil
}

func (s *gormStore) Update(r *domain.Room) error {
	return s.db.Save(r).Error
}

func (s *gormStore) Delete(id string) error {
	result := s.db.Delete(&domain.Room{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *gormStore) FindAll() ([]domain.Room, error) {
	var rooms []domain.Room
	result := s.db.Order("created_at, id").Find(&rooms)
	return rooms, result.Error
}

func (s *gormStore) SearchByName(query string) ([]domain.Room, error) {
	var rooms []domain.Room
	pattern := "%" + strings.ToLower(query) + "%"
	result := s.db.Where("lower(name) LIKE ?", pattern).Order("created_at, id").Find(&rooms)
	return rooms, result.Error
}

func (s *gormStore) FindByCategory(category string) ([]domain.Room, error) {
	var rooms []domain.Room
	result := s.db.Where("category = ?", category).Order("created_at, id").Find(&rooms)
	return rooms, result.Error
}

// ReplaceAll swaps the entire directory contents in one transaction.
// Used by the client-state sync channel.
func (s *gormStore) ReplaceAll(rooms []domain.Room) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Room{}).Error; err != nil {
			return err
		}
		if len(rooms) == 0 {
			return nil
		}
		return tx.Create(&rooms).Error
	})
}

func (s *gormStore) Count() (int64, error) {
	var count int64
	result := s.db.Model(&domain.Room{}).Count(&count)
	return count, result.Error
}
