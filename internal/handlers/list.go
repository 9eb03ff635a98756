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

// ListHandler coordinates list HTTP handlers. Every operation first resolves
// the parent board through the access-control service.
type ListHandler struct {
	boardService *services.BoardService
	listService  *services.ListService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(boardService *services.BoardService, listService *services.ListService) *ListHandler {
	return &ListHandler{
		boardService: boardService,
		listService:  listService,
	}
}

// CreateList creates a list on the board.
func (h *ListHandler) CreateList(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	board, ok := h.resolveBoard(c, true)
	if !ok {
		return
	}

	type CreateListRequest struct {
		Title string `json:"title" binding:"required"`
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	list, err := h.listService.CreateList(board, req.Title, user)
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListDTO(*list))
}

// ListLists returns the board's lists, paginated.
func (h *ListHandler) ListLists(c *gin.Context) {
	board, ok := h.resolveBoard(c, false)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	lists, err := h.listService.ListLists(board.ID, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDTOs(lists))
}

// GetList returns a single list scoped to the board.
func (h *ListHandler) GetList(c *gin.Context) {
	board, ok := h.resolveBoard(c, false)
	if !ok {
		return
	}

	list, ok := h.resolveList(c, board)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToListDTO(*list))
}

// UpdateList applies a partial update to the list. Only the title is mutable;
// a list never changes boards.
func (h *ListHandler) UpdateList(c *gin.Context) {
	board, ok := h.resolveBoard(c, true)
	if !ok {
		return
	}

	list, ok := h.resolveList(c, board)
	if !ok {
		return
	}

	type UpdateListRequest struct {
		Title *string `json:"title"`
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	updated, err := h.listService.UpdateList(list, services.UpdateListInput{
		Title: req.Title,
	})
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDTO(*updated))
}

func (h *ListHandler) resolveBoard(c *gin.Context, mutation bool) (*models.Board, bool) {
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
	return board, true
}

func (h *ListHandler) resolveList(c *gin.Context, board *models.Board) (*models.List, bool) {
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

func respondListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrListNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTitle):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
