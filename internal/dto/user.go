package dto

import (
	"time"

	"github.com/mizuki-dev/kanban-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserPublicDTO represents another user's public profile
type UserPublicDTO struct {
	Username string `json:"username"`
}

// AccessTokenDTO represents an issued bearer token
type AccessTokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisteredUserDTO is the registration response: the user plus a freshly
// issued token.
type RegisteredUserDTO struct {
	UserDTO
	AccessToken AccessTokenDTO `json:"access_token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserPublicDTO converts a User model to UserPublicDTO
func ToUserPublicDTO(user models.User) UserPublicDTO {
	return UserPublicDTO{
		Username: user.Username,
	}
}

// ToUserPublicDTOs converts a slice of users to public profiles
func ToUserPublicDTOs(users []models.User) []UserPublicDTO {
	dtos := make([]UserPublicDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserPublicDTO(user)
	}
	return dtos
}
