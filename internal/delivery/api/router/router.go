// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookshop/internal/delivery/api/middleware"
	"bookshop/internal/delivery/api/router/handler"
	"bookshop/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	apiPrefix      = "/api/v1"
	authLimitScope = "auth"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	BookHandler         *handler.BookHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	// LocalStore is nil unless thumbnails are kept on local disk.
	LocalStore *storage.LocalStore `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	bookHandler    *handler.BookHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
	localStore     *storage.LocalStore
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		bookHandler:    params.BookHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimit:      params.RateLimitMiddleware,
		localStore:     params.LocalStore,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.localStore != nil {
		e.Static(r.localStore.URLPrefix(), r.localStore.Dir())
	}

	apiV1 := e.Group(apiPrefix)
	requireAuth := r.authMiddleware.Authenticate

	authGroup := apiV1.Group("/auth", r.rateLimit.Limit(authLimitScope))
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	usersGroup := apiV1.Group("/users", requireAuth)
	{
		usersGroup.GET("/profile", r.userHandler.GetProfile)
		usersGroup.PATCH("/profile", r.userHandler.EditProfile)
		usersGroup.PATCH("/password", r.userHandler.ChangePassword)
	}

	apiV1.GET("/categories", r.catalogHandler.ListCategories)
	apiV1.POST("/categories", r.catalogHandler.CreateCategory, requireAuth)
	apiV1.GET("/authors", r.catalogHandler.ListAuthors)
	apiV1.POST("/authors", r.catalogHandler.CreateAuthor, requireAuth)
	apiV1.GET("/tags", r.catalogHandler.ListTags)
	apiV1.POST("/tags", r.catalogHandler.CreateTag, requireAuth)

	booksGroup := apiV1.Group("/books")
	{
		booksGroup.GET("", r.bookHandler.List)
		booksGroup.GET("/mine", r.bookHandler.ListMine, requireAuth)
		booksGroup.GET("/:id", r.bookHandler.Get)
		booksGroup.POST("", r.bookHandler.Create, requireAuth)
		booksGroup.PATCH("/:id", r.bookHandler.Edit, requireAuth)
		booksGroup.DELETE("/:id", r.bookHandler.Delete, requireAuth)
	}
}
