// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lumera/config"
	"lumera/internal/delivery/http/middleware"
	"lumera/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	AccountHandler  *handler.AccountHandler
	AdminHandler    *handler.AdminHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	sessionHandler  *handler.SessionHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	accountHandler  *handler.AccountHandler
	adminHandler    *handler.AdminHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		sessionHandler:  params.SessionHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		accountHandler:  params.AccountHandler,
		adminHandler:    params.AdminHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.sessionHandler.SignUp)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Public storefront routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/products/:id/qr", r.catalogHandler.GetProductQR)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/content/home", r.catalogHandler.GetHomeContent)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/cart", r.cartHandler.GetCart)
		userGroup.PUT("/cart/:productID", r.cartHandler.AddProduct)
		userGroup.DELETE("/cart/:productID", r.cartHandler.RemoveProduct)

		userGroup.GET("/wishlist", r.wishlistHandler.GetWishlist)
		userGroup.PUT("/wishlist/:productID", r.wishlistHandler.AddProduct)
		userGroup.DELETE("/wishlist/:productID", r.wishlistHandler.RemoveProduct)
		userGroup.POST("/wishlist/:productID/move-to-cart", r.wishlistHandler.MoveToCart)

		userGroup.GET("/account", r.accountHandler.GetAccount)
		userGroup.GET("/orders", r.accountHandler.ListOrders)
	}

	// Management console routes. Access control is left to the deployment
	// edge, mirroring the reverse-proxy setup this API ships behind.
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
		adminGroup.POST("/products/import", r.adminHandler.ImportProducts)

		adminGroup.POST("/categories", r.adminHandler.CreateCategory)
		adminGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory)

		adminGroup.PUT("/content/home", r.adminHandler.SaveHomeContent)
		adminGroup.POST("/uploads", r.adminHandler.Upload)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}

	// Test routes for middleware validation, enabled per environment
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
