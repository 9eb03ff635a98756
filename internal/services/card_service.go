package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/repository"
	"github.com/mizuki-dev/kanban-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound = errors.New("card not found")
	// ErrInvalidMoveTarget covers both a missing target list and a target
	// list on a different board; cards never move across boards.
	ErrInvalidMoveTarget = errors.New("target list does not exist on this board")
)

// CardService handles card mutations and the history ledger. Every mutation
// appends exactly one history entry within the mutation's transaction.
type CardService struct {
	cardRepo repository.CardRepository
	listRepo repository.ListRepository
}

// NewCardService creates a new CardService.
func NewCardService(cardRepo repository.CardRepository, listRepo repository.ListRepository) *CardService {
	return &CardService{
		cardRepo: cardRepo,
		listRepo: listRepo,
	}
}

// CreateCardInput represents input for creating a card.
type CreateCardInput struct {
	Title       string
	Description string
}

// CreateCard creates a card on the list and records the "create" history
// entry.
func (s *CardService) CreateCard(list *models.List, input CreateCardInput, authorID uint64) (*models.Card, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}

	now := time.Now()
	card := &models.Card{
		Title:          input.Title,
		Description:    input.Description,
		ListID:         list.ID,
		LastChangeByID: authorID,
		CreatedAt:      now,
		LastChangeAt:   now,
	}

	entry := historyEntry(card, models.CardActionCreate)
	if err := s.cardRepo.CreateWithHistory(card, &entry); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return card, nil
}

// GetCardScoped fetches a card and verifies it belongs to the list.
func (s *CardService) GetCardScoped(cardID uint64, list *models.List) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}

	if card.ListID != list.ID {
		return nil, ErrCardNotFound
	}

	return card, nil
}

// ListCards returns the list's cards in insertion order, paginated.
func (s *CardService) ListCards(listID uint64, params utils.PaginationParams) ([]models.Card, error) {
	cards, err := s.cardRepo.ListByList(listID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// UpdateCardInput carries the optional card fields; nil means "leave
// unchanged". A ListID moves the card to another list of the same board.
type UpdateCardInput struct {
	Title       *string
	Description *string
	ListID      *uint64
}

// UpdateCard applies the patch, refreshes the change stamp and appends the
// history entry: "move" when the card changed lists, "update" otherwise.
func (s *CardService) UpdateCard(card *models.Card, input UpdateCardInput, actorID uint64) (*models.Card, error) {
	action := models.CardActionUpdate
	fields := map[string]interface{}{}

	if input.ListID != nil && *input.ListID != card.ListID {
		if err := s.checkMoveTarget(card, *input.ListID); err != nil {
			return nil, err
		}
		card.ListID = *input.ListID
		fields["list_id"] = card.ListID
		action = models.CardActionMove
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		card.Title = *input.Title
		fields["title"] = card.Title
	}
	if input.Description != nil {
		card.Description = *input.Description
		fields["description"] = card.Description
	}

	card.LastChangeAt = time.Now()
	card.LastChangeByID = actorID
	fields["last_change_at"] = card.LastChangeAt
	fields["last_change_by_id"] = card.LastChangeByID

	entry := historyEntry(card, action)
	if err := s.cardRepo.UpdateWithHistory(card.ID, fields, &entry); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return card, nil
}

// DeleteCard removes the card and appends the "delete" entry holding the
// pre-delete state with a refreshed change stamp. The deleted card is
// returned to the caller.
func (s *CardService) DeleteCard(card *models.Card, actorID uint64) (*models.Card, error) {
	card.LastChangeAt = time.Now()
	card.LastChangeByID = actorID

	entry := historyEntry(card, models.CardActionDelete)
	if err := s.cardRepo.DeleteWithHistory(card.ID, &entry); err != nil {
		return nil, fmt.Errorf("failed to delete card: %w", err)
	}

	return card, nil
}

// GetCardHistory returns the card's history entries, newest first.
func (s *CardService) GetCardHistory(cardID uint64, params utils.PaginationParams) ([]models.CardHistory, error) {
	entries, err := s.cardRepo.ListHistory(cardID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list card history: %w", err)
	}
	return entries, nil
}

// checkMoveTarget verifies the target list exists and sits on the same board
// as the card's current list.
func (s *CardService) checkMoveTarget(card *models.Card, targetListID uint64) error {
	target, err := s.listRepo.FindByID(targetListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidMoveTarget
		}
		return fmt.Errorf("failed to find target list: %w", err)
	}

	current, err := s.listRepo.FindByID(card.ListID)
	if err != nil {
		return fmt.Errorf("failed to find current list: %w", err)
	}

	if target.BoardID != current.BoardID {
		return ErrInvalidMoveTarget
	}

	return nil
}

// historyEntry snapshots the card's current state under the given action.
func historyEntry(card *models.Card, action models.CardHistoryAction) models.CardHistory {
	return models.CardHistory{
		CardID:         card.ID,
		Title:          card.Title,
		Description:    card.Description,
		Action:         action,
		ListID:         card.ListID,
		LastChangeByID: card.LastChangeByID,
		LastChangeAt:   card.LastChangeAt,
	}
}
