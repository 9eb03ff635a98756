package models

import "time"

// Card may move between lists, but only within the board of its current list.
// Deletes are hard deletes; the history table keeps the durable record.
type Card struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	ListID         uint64    `gorm:"not null;index" json:"list_id"`
	LastChangeByID uint64    `gorm:"not null" json:"last_change_by_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastChangeAt   time.Time `gorm:"not null" json:"last_change_at"`

	// Relations
	List         List `gorm:"foreignKey:ListID" json:"list,omitempty"`
	LastChangeBy User `gorm:"foreignKey:LastChangeByID" json:"last_change_by,omitempty"`
}
