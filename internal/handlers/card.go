package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/dto"
	apierrors "github.com/mizuki-dev/kanban-api/internal/errors"
	"github.com/mizuki-dev/kanban-api/internal/middleware"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/services"
	"github.com/mizuki-dev/kanban-api/internal/utils"
)

// CardHandler coordinates card HTTP handlers. Every operation walks the
// board -> list -> card chain, failing with 404 on any scope mismatch.
type CardHandler struct {
	boardService *services.BoardService
	listService  *services.ListService
	cardService  *services.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(boardService *services.BoardService, listService *services.ListService, cardService *services.CardService) *CardHandler {
	return &CardHandler{
		boardService: boardService,
		listService:  listService,
		cardService:  cardService,
	}
}

// CreateCard creates a card on the list and records its first history entry.
func (h *CardHandler) CreateCard(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	list, ok := h.resolveScope(c, true)
	if !ok {
		return
	}

	type CreateCardRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	card, err := h.cardService.CreateCard(list, services.CreateCardInput{
		Title:       req.Title,
		Description: req.Description,
	}, user.ID)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardDTO(*card))
}

// ListCards returns the list's cards, paginated.
func (h *CardHandler) ListCards(c *gin.Context) {
	list, ok := h.resolveScope(c, false)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	cards, err := h.cardService.ListCards(list.ID, params)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardDTOs(cards))
}

// GetCard returns a single card scoped to the list.
func (h *CardHandler) GetCard(c *gin.Context) {
	list, ok := h.resolveScope(c, false)
	if !ok {
		return
	}

	card, ok := h.resolveCard(c, list)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToCardDTO(*card))
}

// UpdateCard applies a partial update to the card. A list_id in the patch
// moves the card; the target must be a list of the same board.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	list, ok := h.resolveScope(c, true)
	if !ok {
		return
	}

	card, ok := h.resolveCard(c, list)
	if !ok {
		return
	}

	type UpdateCardRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		ListID      *uint64 `json:"list_id"`
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	updated, err := h.cardService.UpdateCard(card, services.UpdateCardInput{
		Title:       req.Title,
		Description: req.Description,
		ListID:      req.ListID,
	}, user.ID)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardDTO(*updated))
}

// DeleteCard removes the card, recording the pre-delete snapshot, and returns
// the deleted card.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	list, ok := h.resolveScope(c, true)
	if !ok {
		return
	}

	card, ok := h.resolveCard(c, list)
	if !ok {
		return
	}

	deleted, err := h.cardService.DeleteCard(card, user.ID)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardDTO(*deleted))
}

// GetCardHistory returns the card's history, newest first, paginated.
func (h *CardHandler) GetCardHistory(c *gin.Context) {
	list, ok := h.resolveScope(c, false)
	if !ok {
		return
	}

	card, ok := h.resolveCard(c, list)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	entries, err := h.cardService.GetCardHistory(card.ID, params)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardHistoryDTOs(entries))
}

// resolveScope authorizes the board and fetches the list scoped to it.
func (h *CardHandler) resolveScope(c *gin.Context, mutation bool) (*models.List, bool) {
	boardID, ok := parseIDParam(c, "board_id")
	if !ok {
		return nil, false
	}
	user, _ := middleware.GetCurrentUser(c)

	board, err := h.boardService.GetBoardAuthorized(boardID, user, mutation)
	if err != nil {
		respondBoardError(c, err)
		return nil, false
	}

	listID, ok := parseIDParam(c, "list_id")
	if !ok {
		return nil, false
	}

	list, err := h.listService.GetListScoped(listID, board)
	if err != nil {
		respondListError(c, err)
		return nil, false
	}

	return list, true
}

func (h *CardHandler) resolveCard(c *gin.Context, list *models.List) (*models.Card, bool) {
	cardID, ok := parseIDParam(c, "card_id")
	if !ok {
		return nil, false
	}

	card, err := h.cardService.GetCardScoped(cardID, list)
	if err != nil {
		respondCardError(c, err)
		return nil, false
	}
	return card, true
}

func respondCardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCardNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidMoveTarget):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTitle):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
