// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GuildCommanderHandler *handler.GuildCommanderHandler
	AdventurerHandler     *handler.AdventurerHandler
	AuthenticationHandler *handler.AuthenticationHandler
	QuestOpsHandler       *handler.QuestOpsHandler
	QuestViewingHandler   *handler.QuestViewingHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	guildCommanderHandler *handler.GuildCommanderHandler
	adventurerHandler     *handler.AdventurerHandler
	authenticationHandler *handler.AuthenticationHandler
	questOpsHandler       *handler.QuestOpsHandler
	questViewingHandler   *handler.QuestViewingHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		guildCommanderHandler: params.GuildCommanderHandler,
		adventurerHandler:     params.AdventurerHandler,
		authenticationHandler: params.AuthenticationHandler,
		questOpsHandler:       params.QuestOpsHandler,
		questViewingHandler:   params.QuestViewingHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/guild-commanders/register", r.guildCommanderHandler.Register)
	e.POST("/adventurers/register", r.adventurerHandler.Register)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/guild-commanders/login", r.authenticationHandler.LoginGuildCommander)
		authGroup.POST("/guild-commanders/refresh", r.authenticationHandler.RefreshGuildCommander)
		authGroup.POST("/adventurers/login", r.authenticationHandler.LoginAdventurer)
		authGroup.POST("/adventurers/refresh", r.authenticationHandler.RefreshAdventurer)
	}

	// Commander-side quest operations require a guild commander token.
	opsGroup := e.Group("/quests")
	opsGroup.Use(r.authMiddleware.Authenticate(entity.KindGuildCommander))
	{
		opsGroup.POST("", r.questOpsHandler.Add)
		opsGroup.PATCH("/:id", r.questOpsHandler.Edit)
		opsGroup.DELETE("/:id", r.questOpsHandler.Remove)
		opsGroup.GET("/owned", r.questOpsHandler.ListOwned)
	}

	// The quest board is read-only and requires an adventurer token.
	boardGroup := e.Group("/board")
	boardGroup.Use(r.authMiddleware.Authenticate(entity.KindAdventurer))
	{
		boardGroup.GET("/quests", r.questViewingHandler.List)
		boardGroup.GET("/quests/:id", r.questViewingHandler.View)
	}
}
