package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/config"
	"github.com/mizuki-dev/kanban-api/internal/database"
	"github.com/mizuki-dev/kanban-api/internal/middleware"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/repository"
	"github.com/mizuki-dev/kanban-api/internal/services"
	"github.com/mizuki-dev/kanban-api/internal/taskqueue"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	userService  *services.UserService
	tokenService *services.TokenService
	boardService *services.BoardService
	listService  *services.ListService
	cardService  *services.CardService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.BoardCollaborator{},
		&models.List{},
		&models.Card{},
		&models.CardHistory{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	cfg := &config.Config{
		SecretKey:                "test-secret-key",
		JWTAudience:              "kanban:auth",
		AccessTokenExpireMinutes: 60,
	}

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)

	tokenService := services.NewTokenService(cfg)
	userService := services.NewUserService(userRepo, taskqueue.NewLogQueue())
	boardService := services.NewBoardService(boardRepo)
	listService := services.NewListService(listRepo)
	cardService := services.NewCardService(cardRepo, listRepo)

	userHandler := NewUserHandler(userService, tokenService)
	boardHandler := NewBoardHandler(boardService)
	listHandler := NewListHandler(boardService, listService)
	cardHandler := NewCardHandler(boardService, listService, cardService)

	requireAuth := middleware.RequireAuth(tokenService, userRepo)
	optionalAuth := middleware.OptionalAuth(tokenService, userRepo)

	r := gin.New()
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.POST("/login/token", userHandler.LoginToken)
			users.GET("/me", requireAuth, userHandler.GetCurrentUser)
			users.PATCH("/me", requireAuth, userHandler.UpdateProfile)
			users.PATCH("/me/password_update", requireAuth, userHandler.UpdatePassword)
			users.POST("/me/avatar", requireAuth, userHandler.UploadAvatar)
			users.GET("/:username", userHandler.GetUserByUsername)
		}

		boards := api.Group("/boards")
		{
			boards.POST("", requireAuth, boardHandler.CreateBoard)
			boards.GET("", boardHandler.ListPublicBoards)
			boards.GET("/me", requireAuth, boardHandler.ListMyBoards)
			boards.GET("/:board_id", optionalAuth, boardHandler.GetBoard)
			boards.GET("/:board_id/users", optionalAuth, boardHandler.ListBoardCollaborators)

			lists := boards.Group("/:board_id/lists")
			{
				lists.POST("", requireAuth, listHandler.CreateList)
				lists.GET("", optionalAuth, listHandler.ListLists)
				lists.GET("/:list_id", optionalAuth, listHandler.GetList)
				lists.PATCH("/:list_id", requireAuth, listHandler.UpdateList)

				cards := lists.Group("/:list_id/cards")
				{
					cards.POST("", requireAuth, cardHandler.CreateCard)
					cards.GET("", optionalAuth, cardHandler.ListCards)
					cards.GET("/:card_id", optionalAuth, cardHandler.GetCard)
					cards.PATCH("/:card_id", requireAuth, cardHandler.UpdateCard)
					cards.DELETE("/:card_id", requireAuth, cardHandler.DeleteCard)
					cards.GET("/:card_id/history", optionalAuth, cardHandler.GetCardHistory)
				}
			}
		}
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:           db,
		router:       r,
		userService:  userService,
		tokenService: tokenService,
		boardService: boardService,
		listService:  listService,
		cardService:  cardService,
	}
}

// createUser registers a user directly through the service and returns it
// with a valid access token.
func (env *testEnv) createUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user, err := env.userService.Register(services.RegisterInput{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
		Password: "password123",
	})
	require.NoError(t, err)

	token, err := env.tokenService.CreateAccessToken(user)
	require.NoError(t, err)

	return user, token
}

// doJSON performs a JSON request against the test router. An empty token
// leaves the request anonymous.
func (env *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// doForm performs a form-encoded request against the test router.
func (env *testEnv) doForm(t *testing.T, method, path string, values map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	form := make([]string, 0, len(values))
	for k, v := range values {
		form = append(form, k+"="+v)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(strings.Join(form, "&")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
