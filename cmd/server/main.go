package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/config"
	"github.com/mizuki-dev/kanban-api/internal/database"
	"github.com/mizuki-dev/kanban-api/internal/handlers"
	"github.com/mizuki-dev/kanban-api/internal/middleware"
	"github.com/mizuki-dev/kanban-api/internal/repository"
	"github.com/mizuki-dev/kanban-api/internal/services"
	"github.com/mizuki-dev/kanban-api/internal/taskqueue"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatal().Err(err).Msg("failed to add indexes")
		}
	}

	// Background job broker
	queue := taskqueue.NewRedisQueue(cfg.RedisAddr, cfg.QueueKey)
	defer queue.Close()

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg)
	userService := services.NewUserService(userRepo, queue)
	boardService := services.NewBoardService(boardRepo)
	listService := services.NewListService(listRepo)
	cardService := services.NewCardService(cardRepo, listRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService, tokenService)
	boardHandler := handlers.NewBoardHandler(boardService)
	listHandler := handlers.NewListHandler(boardService, listService)
	cardHandler := handlers.NewCardHandler(boardService, listService, cardService)

	// Initialize Gin router
	r := gin.Default()

	requireAuth := middleware.RequireAuth(tokenService, userRepo)
	optionalAuth := middleware.OptionalAuth(tokenService, userRepo)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Kanban API is running",
		})
	})

	// API routes
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

	// Start server
	log.Info().Str("addr", cfg.ListenAddr).Msg("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
