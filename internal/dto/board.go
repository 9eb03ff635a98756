package dto

import (
	"time"

	"github.com/mizuki-dev/kanban-api/internal/models"
)

// BoardDTO represents a board in API responses
type BoardDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Public    bool      `json:"public"`
	OwnerID   uint64    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToBoardDTO converts a Board model to BoardDTO
func ToBoardDTO(board models.Board) BoardDTO {
	return BoardDTO{
		ID:        board.ID,
		Title:     board.Title,
		Public:    board.Public,
		OwnerID:   board.OwnerID,
		CreatedAt: board.CreatedAt,
	}
}

// ToBoardDTOs converts a slice of boards
func ToBoardDTOs(boards []models.Board) []BoardDTO {
	dtos := make([]BoardDTO, len(boards))
	for i, board := range boards {
		dtos[i] = ToBoardDTO(board)
	}
	return dtos
}
