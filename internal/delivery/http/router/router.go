// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kindred/config"
	"kindred/internal/delivery/http/middleware"
	"kindred/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	ProfileHandler *handler.ProfileHandler
	MatchHandler   *handler.MatchHandler
	NGOHandler     *handler.NGOHandler
	PostHandler    *handler.PostHandler
	ActionHandler  *handler.ActionHandler
	SessionHandler *handler.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	profileHandler *handler.ProfileHandler
	matchHandler   *handler.MatchHandler
	ngoHandler     *handler.NGOHandler
	postHandler    *handler.PostHandler
	actionHandler  *handler.ActionHandler
	sessionHandler *handler.SessionHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		profileHandler: params.ProfileHandler,
		matchHandler:   params.MatchHandler,
		ngoHandler:     params.NGOHandler,
		postHandler:    params.PostHandler,
		actionHandler:  params.ActionHandler,
		sessionHandler: params.SessionHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog and feed routes, browsable without an account
	ngoGroup := e.Group("/ngos")
	{
		ngoGroup.GET("", r.ngoHandler.ListNGOs)
		ngoGroup.GET("/:id", r.ngoHandler.GetNGO)
		ngoGroup.GET("/:id/qrcode", r.ngoHandler.GetDonationQR)
		ngoGroup.GET("/:id/posts", r.postHandler.ListByNGO)
	}

	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.ListFeed)
		postGroup.GET("/:id", r.postHandler.GetPost)
	}

	// Routes bound to the authenticated user
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/profile", r.profileHandler.GetProfile)
		meGroup.PUT("/profile", r.profileHandler.UpsertProfile)
		meGroup.PUT("/profile/interests", r.profileHandler.UpdateInterests)

		meGroup.GET("/matches", r.matchHandler.GetMatches)
		meGroup.PUT("/matches/:ngoID/adoption", r.matchHandler.SetAdopted)

		meGroup.POST("/actions", r.actionHandler.RecordAction)
		meGroup.GET("/actions", r.actionHandler.ListActions)

		meGroup.POST("/sessions", r.sessionHandler.RecordSignIn)
	}

	// Catalog management requires authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/ngos", r.ngoHandler.CreateNGO)
		adminGroup.PUT("/ngos/:id", r.ngoHandler.UpdateNGO)
		adminGroup.POST("/posts", r.postHandler.CreatePost)
	}

	// Middleware validation endpoints, enabled outside production only
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testHandler := handler.NewTestHandler()
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
