package models

// List belongs to exactly one board. BoardID is set at creation and never
// changes afterwards.
type List struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Title       string `gorm:"type:varchar(100);not null" json:"title"`
	BoardID     uint64 `gorm:"not null;index" json:"board_id"`
	CreatedByID uint64 `gorm:"not null" json:"created_by_id"`

	// Relations
	Board     Board  `gorm:"foreignKey:BoardID" json:"board,omitempty"`
	CreatedBy User   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Cards     []Card `gorm:"foreignKey:ListID" json:"cards,omitempty"`
}
