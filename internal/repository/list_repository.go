package repository

import (
	"github.com/mizuki-dev/kanban-api/internal/database"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/utils"
	"gorm.io/gorm"
)

// GormListRepository is a GORM implementation of ListRepository
type GormListRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new ListRepository
func NewListRepository(db *gorm.DB) ListRepository {
	return &GormListRepository{db: db}
}

// Create creates a new list
func (r *GormListRepository) Create(list *models.List) error {
	return r.db.Create(list).Error
}

// FindByID finds a list by ID
func (r *GormListRepository) FindByID(id uint64) (*models.List, error) {
	var list models.List
	if err := r.db.First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// ListByBoard lists a board's lists in insertion order
func (r *GormListRepository) ListByBoard(boardID uint64, params utils.PaginationParams) ([]models.List, error) {
	var lists []models.List
	if err := r.db.Where("board_id = ?", boardID).
		Order("id").
		Scopes(database.Paginate(params)).
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// Update applies the given fields to the list row. board_id is never among
// the fields; a list cannot change boards.
func (r *GormListRepository) Update(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&models.List{}).Where("id = ?", id).Updates(fields).Error
}
