package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/dto"
	apierrors "github.com/mizuki-dev/kanban-api/internal/errors"
	"github.com/mizuki-dev/kanban-api/internal/middleware"
	"github.com/mizuki-dev/kanban-api/internal/services"
)

// UserHandler coordinates user and authentication HTTP handlers.
type UserHandler struct {
	userService  *services.UserService
	tokenService *services.TokenService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, tokenService *services.TokenService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		tokenService: tokenService,
	}
}

// Register creates a new user and returns it together with a fresh access
// token.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	token, err := h.tokenService.CreateAccessToken(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue access token")
		return
	}

	c.JSON(http.StatusCreated, dto.RegisteredUserDTO{
		UserDTO: dto.ToUserDTO(*user),
		AccessToken: dto.AccessTokenDTO{
			AccessToken: token,
			TokenType:   "bearer",
		},
	})
}

// LoginToken authenticates form credentials and returns an access token.
func (h *UserHandler) LoginToken(c *gin.Context) {
	type LoginRequest struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid login form")
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondUserError(c, err)
		return
	}

	token, err := h.tokenService.CreateAccessToken(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue access token")
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile applies a partial update to the caller's email and username.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateProfileRequest struct {
		Email    *string `json:"email" binding:"omitempty,email"`
		Username *string `json:"username"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	updated, err := h.userService.UpdateProfile(user, services.UpdateProfileInput{
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*updated))
}

// UpdatePassword replaces the caller's password, regenerating salt and hash.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdatePasswordRequest struct {
		Password string `json:"password" binding:"required"`
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	if err := h.userService.UpdatePassword(user, req.Password); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated",
	})
}

// UploadAvatar accepts an avatar image and dispatches thumbnailing to the
// background workers. The response never waits on the job.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type UploadAvatarRequest struct {
		File string `json:"file" binding:"required"`
	}

	var req UploadAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	h.userService.QueueAvatarUpload(user.Username, req.File)

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Avatar upload queued",
	})
}

// GetUserByUsername returns another user's public profile.
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.userService.GetUserByUsername(c.Param("username"))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPublicDTO(*user))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidUsername),
		errors.Is(err, services.ErrInvalidPassword):
		apierrors.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
