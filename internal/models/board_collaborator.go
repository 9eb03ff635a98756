package models

// BoardCollaborator records membership of a user on a board. The board owner
// always has a row here, written in the same transaction as the board itself.
type BoardCollaborator struct {
	BoardID uint64 `gorm:"primarykey" json:"board_id"`
	UserID  uint64 `gorm:"primarykey" json:"user_id"`

	// Relations
	Board Board `gorm:"foreignKey:BoardID" json:"board,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (BoardCollaborator) TableName() string {
	return "board_users"
}
