package dto

import (
	"time"

	"github.com/mizuki-dev/kanban-api/internal/models"
)

// CardDTO represents a card in API responses
type CardDTO struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ListID         uint64    `json:"list_id"`
	LastChangeByID uint64    `json:"last_change_by_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastChangeAt   time.Time `json:"last_change_at"`
}

// CardHistoryDTO represents a card history entry in API responses
type CardHistoryDTO struct {
	ID             uint64                   `json:"id"`
	CardID         uint64                   `json:"card_id"`
	Title          string                   `json:"title"`
	Description    string                   `json:"description"`
	Action         models.CardHistoryAction `json:"action"`
	ListID         uint64                   `json:"list_id"`
	LastChangeByID uint64                   `json:"last_change_by_id"`
	LastChangeAt   time.Time                `json:"last_change_at"`
}

// ToCardDTO converts a Card model to CardDTO
func ToCardDTO(card models.Card) CardDTO {
	return CardDTO{
		ID:             card.ID,
		Title:          card.Title,
		Description:    card.Description,
		ListID:         card.ListID,
		LastChangeByID: card.LastChangeByID,
		CreatedAt:      card.CreatedAt,
		LastChangeAt:   card.LastChangeAt,
	}
}

// ToCardDTOs converts a slice of cards
func ToCardDTOs(cards []models.Card) []CardDTO {
	dtos := make([]CardDTO, len(cards))
	for i, card := range cards {
		dtos[i] = ToCardDTO(card)
	}
	return dtos
}

// ToCardHistoryDTO converts a CardHistory model to CardHistoryDTO
func ToCardHistoryDTO(entry models.CardHistory) CardHistoryDTO {
	return CardHistoryDTO{
		ID:             entry.ID,
		CardID:         entry.CardID,
		Title:          entry.Title,
		Description:    entry.Description,
		Action:         entry.Action,
		ListID:         entry.ListID,
		LastChangeByID: entry.LastChangeByID,
		LastChangeAt:   entry.LastChangeAt,
	}
}

// ToCardHistoryDTOs converts a slice of history entries
func ToCardHistoryDTOs(entries []models.CardHistory) []CardHistoryDTO {
	dtos := make([]CardHistoryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = ToCardHistoryDTO(entry)
	}
	return dtos
}
