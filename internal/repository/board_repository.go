package repository

import (
	"errors"
	"fmt"

	"github.com/mizuki-dev/kanban-api/internal/database"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrCreateBoard is returned when creating a board fails inside the create transaction.
	ErrCreateBoard = errors.New("board repository: create board failed")
	// ErrCreateCollaborator is returned when adding the owner's collaborator row fails inside the create transaction.
	ErrCreateCollaborator = errors.New("board repository: create collaborator failed")
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// CreateWithOwnerCollaborator creates the board and the owner's collaborator
// row atomically. A board must never exist whose owner is not a collaborator.
func (r *GormBoardRepository) CreateWithOwnerCollaborator(board *models.Board) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateBoard, err)
		}

		collaborator := &models.BoardCollaborator{
			BoardID: board.ID,
			UserID:  board.OwnerID,
		}
		if err := tx.Create(collaborator).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateCollaborator, err)
		}

		return nil
	})
}

// FindByID finds a board by ID
func (r *GormBoardRepository) FindByID(id uint64) (*models.Board, error) {
	var board models.Board
	if err := r.db.First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// ListPublic lists public boards in insertion order
func (r *GormBoardRepository) ListPublic(params utils.PaginationParams) ([]models.Board, error) {
	var boards []models.Board
	if err := r.db.Where("public = ?", true).
		Order("id").
		Scopes(database.Paginate(params)).
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// ListByOwner lists boards owned by a user
func (r *GormBoardRepository) ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Board, error) {
	var boards []models.Board
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("id").
		Scopes(database.Paginate(params)).
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// AddCollaborator adds a user to a board's collaborator set
func (r *GormBoardRepository) AddCollaborator(boardID, userID uint64) error {
	return r.db.Create(&models.BoardCollaborator{
		BoardID: boardID,
		UserID:  userID,
	}).Error
}

// IsCollaborator reports whether the user is on the board's collaborator set
func (r *GormBoardRepository) IsCollaborator(boardID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.BoardCollaborator{}).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListCollaborators lists the users joined through board_users
func (r *GormBoardRepository) ListCollaborators(boardID uint64) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN board_users ON board_users.user_id = users.id").
		Where("board_users.board_id = ?", boardID).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
