package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mizuki-dev/kanban-api/internal/constants"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/repository"
	"github.com/mizuki-dev/kanban-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrInvalidTitle  = errors.New("title must be 1-100 characters")
)

// BoardService handles board access control and the collaborator roster.
type BoardService struct {
	boardRepo repository.BoardRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(boardRepo repository.BoardRepository) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
	}
}

// CreateBoard persists a board owned by owner. The owner's collaborator row
// is written in the same transaction; the invariant holds from the first
// moment the board is visible.
func (s *BoardService) CreateBoard(title string, public bool, owner *models.User) (*models.Board, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	board := &models.Board{
		Title:   title,
		Public:  public,
		OwnerID: owner.ID,
	}

	if err := s.boardRepo.CreateWithOwnerCollaborator(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// ListPublicBoards returns public boards in insertion order, paginated.
func (s *BoardService) ListPublicBoards(params utils.PaginationParams) ([]models.Board, error) {
	boards, err := s.boardRepo.ListPublic(params)
	if err != nil {
		return nil, fmt.Errorf("failed to list public boards: %w", err)
	}
	return boards, nil
}

// ListOwnedBoards returns boards owned by the user, paginated.
func (s *BoardService) ListOwnedBoards(userID uint64, params utils.PaginationParams) ([]models.Board, error) {
	boards, err := s.boardRepo.ListByOwner(userID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned boards: %w", err)
	}
	return boards, nil
}

// GetBoardAuthorized fetches the board and enforces visibility. Public boards
// are readable by anyone; everything else requires the caller to be a
// collaborator. Denied access reports ErrBoardNotFound rather than a
// forbidden error so that private boards cannot be enumerated.
func (s *BoardService) GetBoardAuthorized(boardID uint64, currentUser *models.User, mutation bool) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	if board.Public && !mutation {
		return board, nil
	}

	if currentUser == nil {
		return nil, ErrBoardNotFound
	}

	member, err := s.boardRepo.IsCollaborator(board.ID, currentUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check collaborator: %w", err)
	}
	if !member {
		return nil, ErrBoardNotFound
	}

	return board, nil
}

// ListCollaborators returns the users on the board's collaborator set.
func (s *BoardService) ListCollaborators(boardID uint64) ([]models.User, error) {
	users, err := s.boardRepo.ListCollaborators(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	return users, nil
}

// IsCollaborator reports whether the user is on the board's collaborator set.
func (s *BoardService) IsCollaborator(boardID, userID uint64) (bool, error) {
	return s.boardRepo.IsCollaborator(boardID, userID)
}

func validateTitle(title string) error {
	if len(strings.TrimSpace(title)) == 0 || len(title) > constants.MaxTitleLength {
		return ErrInvalidTitle
	}
	return nil
}
