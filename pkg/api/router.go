package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mfigueredo/hearth/pkg/api/handlers"
	"github.com/mfigueredo/hearth/pkg/auth"
	"github.com/mfigueredo/hearth/pkg/chat"
	"github.com/mfigueredo/hearth/pkg/db"
	"github.com/mfigueredo/hearth/pkg/device/schema"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	database   *db.DB
	dispatcher *chat.Dispatcher
	tokens     *auth.Tokens
	validator  *schema.Validator
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, dispatcher *chat.Dispatcher, tokens *auth.Tokens, validator *schema.Validator) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		database:   database,
		dispatcher: dispatcher,
		tokens:     tokens,
		validator:  validator,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.database)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Auth (no token required)
		authHandler := handlers.NewAuthHandler(r.database.Users(), r.tokens)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Everything below requires a session token
		authed := v1.Group("")
		authed.Use(AuthRequired(r.tokens))

		// Chat
		chatHandler := handlers.NewChatHandler(r.dispatcher)
		authed.POST("/chat", chatHandler.Chat)

		// Devices
		devicesHandler := handlers.NewDevicesHandler(r.database.Devices(), r.validator)
		devices := authed.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.POST("", devicesHandler.CreateDevice)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.PATCH("/:id", devicesHandler.UpdateDevice)
			devices.DELETE("/:id", devicesHandler.DeleteDevice)
		}

		// Automation rules
		automationsHandler := handlers.NewAutomationsHandler(r.database.Rules(), r.database.Devices(), r.validator)
		automations := authed.Group("/automations")
		{
			automations.GET("", automationsHandler.ListRules)
			automations.POST("", automationsHandler.CreateRule)
			automations.DELETE("/:id", automationsHandler.DeleteRule)
		}
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
