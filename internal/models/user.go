package models

import "time"

type User struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash  string    `gorm:"type:varchar(255);not null" json:"-"`
	Salt          string    `gorm:"type:varchar(64);not null" json:"-"`
	EmailVerified bool      `gorm:"not null;default:true" json:"-"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser   bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Boards         []Board             `gorm:"foreignKey:OwnerID" json:"-"`
	Collaborations []BoardCollaborator `gorm:"foreignKey:UserID" json:"-"`
}
