package models

import "time"

type Board struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title"`
	Public    bool      `gorm:"not null;default:false" json:"public"`
	OwnerID   uint64    `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Owner         User                `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Lists         []List              `gorm:"foreignKey:BoardID" json:"lists,omitempty"`
	Collaborators []BoardCollaborator `gorm:"foreignKey:BoardID" json:"collaborators,omitempty"`
}
