package models

import "time"

type CardHistoryAction string

const (
	CardActionCreate CardHistoryAction = "create"
	CardActionUpdate CardHistoryAction = "update"
	CardActionMove   CardHistoryAction = "move"
	CardActionDelete CardHistoryAction = "delete"
)

// CardHistory is an append-only snapshot of a card taken at every mutation.
// Rows are never updated or deleted, and survive the deletion of the card.
type CardHistory struct {
	ID             uint64            `gorm:"primarykey" json:"id"`
	CardID         uint64            `gorm:"not null;index" json:"card_id"`
	Title          string            `gorm:"type:text;not null" json:"title"`
	Description    string            `gorm:"type:text" json:"description"`
	Action         CardHistoryAction `gorm:"type:varchar(10);not null" json:"action"`
	ListID         uint64            `gorm:"not null;index" json:"list_id"`
	LastChangeByID uint64            `gorm:"not null" json:"last_change_by_id"`
	LastChangeAt   time.Time         `gorm:"not null" json:"last_change_at"`
}

func (CardHistory) TableName() string {
	return "cards_history"
}
