package repository

import (
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update applies the given fields to the user row
	Update(id uint64, fields map[string]interface{}) error
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// CreateWithOwnerCollaborator creates a board and the owner's
	// collaborator row within a single transaction
	CreateWithOwnerCollaborator(board *models.Board) error

	// FindByID finds a board by ID
	FindByID(id uint64) (*models.Board, error)

	// ListPublic lists public boards in insertion order
	ListPublic(params utils.PaginationParams) ([]models.Board, error)

	// ListByOwner lists boards owned by a user
	ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Board, error)

	// AddCollaborator adds a user to a board's collaborator set
	AddCollaborator(boardID, userID uint64) error

	// IsCollaborator reports whether the user is on the board's collaborator set
	IsCollaborator(boardID, userID uint64) (bool, error)

	// ListCollaborators lists the users joined through board_users
	ListCollaborators(boardID uint64) ([]models.User, error)
}

// ListRepository defines the interface for list data access
type ListRepository interface {
	// Create creates a new list
	Create(list *models.List) error

	// FindByID finds a list by ID
	FindByID(id uint64) (*models.List, error)

	// ListByBoard lists a board's lists in insertion order
	ListByBoard(boardID uint64, params utils.PaginationParams) ([]models.List, error)

	// Update applies the given fields to the list row
	Update(id uint64, fields map[string]interface{}) error
}

// CardRepository defines the interface for card and card-history data access.
// Every card mutation and its history snapshot share one transaction: a crash
// between the two must not leave a card without a matching history row.
type CardRepository interface {
	// CreateWithHistory creates a card and its "create" history entry
	CreateWithHistory(card *models.Card, entry *models.CardHistory) error

	// FindByID finds a card by ID
	FindByID(id uint64) (*models.Card, error)

	// ListByList lists a list's cards in insertion order
	ListByList(listID uint64, params utils.PaginationParams) ([]models.Card, error)

	// UpdateWithHistory applies fields to the card row and appends the
	// post-mutation history entry
	UpdateWithHistory(id uint64, fields map[string]interface{}, entry *models.CardHistory) error

	// DeleteWithHistory removes the card and appends the pre-delete snapshot
	DeleteWithHistory(id uint64, entry *models.CardHistory) error

	// ListHistory lists a card's history entries, newest first
	ListHistory(cardID uint64, params utils.PaginationParams) ([]models.CardHistory, error)
}
