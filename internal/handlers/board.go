package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/dto"
	apierrors "github.com/mizuki-dev/kanban-api/internal/errors"
	"github.com/mizuki-dev/kanban-api/internal/middleware"
	"github.com/mizuki-dev/kanban-api/internal/services"
	"github.com/mizuki-dev/kanban-api/internal/utils"
)

// BoardHandler coordinates board HTTP handlers.
type BoardHandler struct {
	boardService *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// CreateBoard creates a board owned by the caller.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateBoardRequest struct {
		Title  string `json:"title" binding:"required"`
		Public bool   `json:"public"`
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(req.Title, req.Public, user)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoardDTO(*board))
}

// ListPublicBoards returns public boards, paginated.
func (h *BoardHandler) ListPublicBoards(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	boards, err := h.boardService.ListPublicBoards(params)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTOs(boards))
}

// ListMyBoards returns the caller's owned boards, paginated.
func (h *BoardHandler) ListMyBoards(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	boards, err := h.boardService.ListOwnedBoards(user.ID, params)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTOs(boards))
}

// GetBoard returns a single board, subject to the visibility rules.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "board_id")
	if !ok {
		return
	}
	user, _ := middleware.GetCurrentUser(c)

	board, err := h.boardService.GetBoardAuthorized(boardID, user, false)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(*board))
}

// ListBoardCollaborators returns the board's collaborator roster, behind the
// same visibility gate as the board itself.
func (h *BoardHandler) ListBoardCollaborators(c *gin.Context) {
	boardID, ok := parseIDParam(c, "board_id")
	if !ok {
		return
	}
	user, _ := middleware.GetCurrentUser(c)

	board, err := h.boardService.GetBoardAuthorized(boardID, user, false)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	users, err := h.boardService.ListCollaborators(board.ID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPublicDTOs(users))
}

func respondBoardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTitle):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
