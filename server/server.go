package server

import (
	"carrot-server/auth"
	"carrot-server/confs"
	"carrot-server/db"
	"carrot-server/handlers"
	httpHandler "carrot-server/handlers/http"
	"carrot-server/repositories"
	"carrot-server/services"
	"carrot-server/usecases"
	"carrot-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))
	s.app.Use(httpHandler.RequestID())

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize store and token manager
	store := repositories.NewPgStore(s.db)
	tokens := auth.NewTokenManager(s.cfg.JWTSecret)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(store)
	todoUseCase := usecases.NewTodoUseCase(store)
	rewardUseCase := usecases.NewRewardUseCase(store)
	inventoryUseCase := usecases.NewInventoryUseCase(store)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(userUseCase, tokens)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	todoHandler := httpHandler.NewTodoHandler(todoUseCase, rewardUseCase)
	shopHandler := httpHandler.NewShopHandler(inventoryUseCase)

	// WebSocket manager, notify handler and the alarm scheduler feeding it
	manager := ws.NewManager()
	notifyHandler := handlers.NewNotifyHandler(manager, tokens)
	scheduler := services.NewAlarmScheduler(store.Todos(), manager)
	scheduler.Start()

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
		}

		// Public shop catalog
		api.GET("/items", shopHandler.ListItems)

		// Authenticated routes
		protected := api.Group("", httpHandler.Auth(tokens))
		{
			protected.GET("/users/me", userHandler.Me)

			todos := protected.Group("/todos")
			{
				todos.POST("", todoHandler.CreateTodo)
				todos.GET("", todoHandler.ListTodos)
				todos.GET("/:id", todoHandler.GetTodo)
				todos.PUT("/:id", todoHandler.UpdateTodo)
				todos.DELETE("/:id", todoHandler.DeleteTodo)
				todos.POST("/:id/complete", todoHandler.CompleteTodo)
				todos.POST("/:id/uncomplete", todoHandler.UncompleteTodo)
			}

			protected.POST("/items/:id/purchase", shopHandler.PurchaseItem)

			inventory := protected.Group("/inventory")
			{
				inventory.GET("", shopHandler.ListInventory)
				inventory.POST("/:id/equip", shopHandler.EquipItem)
				inventory.POST("/:id/unequip", shopHandler.UnequipItem)
			}
		}
	}

	s.app.GET("/ws", notifyHandler.HandleUserWS)

	if err := s.app.Run(s.cfg.ListenAddr); err != nil {
		panic(err)
	}
}
