package repository

import (
	"github.com/mizuki-dev/kanban-api/internal/database"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/utils"
	"gorm.io/gorm"
)

// GormCardRepository is a GORM implementation of CardRepository
type GormCardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &GormCardRepository{db: db}
}

// CreateWithHistory creates a card and its "create" history entry atomically
func (r *GormCardRepository) CreateWithHistory(card *models.Card, entry *models.CardHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(card).Error; err != nil {
			return err
		}

		entry.CardID = card.ID
		return tx.Create(entry).Error
	})
}

// FindByID finds a card by ID
func (r *GormCardRepository) FindByID(id uint64) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListByList lists a list's cards in insertion order
func (r *GormCardRepository) ListByList(listID uint64, params utils.PaginationParams) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Where("list_id = ?", listID).
		Order("id").
		Scopes(database.Paginate(params)).
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateWithHistory applies fields to the card row and appends the
// post-mutation history entry atomically
func (r *GormCardRepository) UpdateWithHistory(id uint64, fields map[string]interface{}, entry *models.CardHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Card{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}

		return tx.Create(entry).Error
	})
}

// DeleteWithHistory removes the card and appends the pre-delete snapshot
// atomically. History rows reference the card by plain ID and survive it.
func (r *GormCardRepository) DeleteWithHistory(id uint64, entry *models.CardHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Card{}, id).Error; err != nil {
			return err
		}

		return tx.Create(entry).Error
	})
}

// ListHistory lists a card's history entries, newest first
func (r *GormCardRepository) ListHistory(cardID uint64, params utils.PaginationParams) ([]models.CardHistory, error) {
	var entries []models.CardHistory
	if err := r.db.Where("card_id = ?", cardID).
		Order("last_change_at DESC, id DESC").
		Scopes(database.Paginate(params)).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
