package dto

import "github.com/mizuki-dev/kanban-api/internal/models"

// ListDTO represents a list in API responses
type ListDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	BoardID     uint64 `json:"board_id"`
	CreatedByID uint64 `json:"created_by_id"`
}

// ToListDTO converts a List model to ListDTO
func ToListDTO(list models.List) ListDTO {
	return ListDTO{
		ID:          list.ID,
		Title:       list.Title,
		BoardID:     list.BoardID,
		CreatedByID: list.CreatedByID,
	}
}

// ToListDTOs converts a slice of lists
func ToListDTOs(lists []models.List) []ListDTO {
	dtos := make([]ListDTO, len(lists))
	for i, list := range lists {
		dtos[i] = ToListDTO(list)
	}
	return dtos
}
