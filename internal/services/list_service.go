package services

import (
	"errors"
	"fmt"

	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/repository"
	"github.com/mizuki-dev/kanban-api/internal/utils"
	"gorm.io/gorm"
)

var ErrListNotFound = errors.New("list not found")

// ListService handles lists scoped to their parent board.
type ListService struct {
	listRepo repository.ListRepository
}

// NewListService creates a new ListService.
func NewListService(listRepo repository.ListRepository) *ListService {
	return &ListService{
		listRepo: listRepo,
	}
}

// CreateList creates a list on the board. The caller must already hold a
// board authorized for mutation.
func (s *ListService) CreateList(board *models.Board, title string, creator *models.User) (*models.List, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	list := &models.List{
		Title:       title,
		BoardID:     board.ID,
		CreatedByID: creator.ID,
	}

	if err := s.listRepo.Create(list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return list, nil
}

// GetListScoped fetches a list and verifies it belongs to the board. A list
// on another board is reported as not found, so guessed IDs leak nothing.
func (s *ListService) GetListScoped(listID uint64, board *models.Board) (*models.List, error) {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find list: %w", err)
	}

	if list.BoardID != board.ID {
		return nil, ErrListNotFound
	}

	return list, nil
}

// ListLists returns the board's lists in insertion order, paginated.
func (s *ListService) ListLists(boardID uint64, params utils.PaginationParams) ([]models.List, error) {
	lists, err := s.listRepo.ListByBoard(boardID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// UpdateListInput carries the optional list fields; nil means "leave
// unchanged". Only the title is mutable.
type UpdateListInput struct {
	Title *string
}

// UpdateList applies the patch to the list.
func (s *ListService) UpdateList(list *models.List, input UpdateListInput) (*models.List, error) {
	if input.Title == nil {
		return list, nil
	}

	if err := validateTitle(*input.Title); err != nil {
		return nil, err
	}

	err := s.listRepo.Update(list.ID, map[string]interface{}{"title": *input.Title})
	if err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	return s.listRepo.FindByID(list.ID)
}
