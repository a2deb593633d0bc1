package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/recordstore-backend/internal/http/handlers"
	"github.com/yungbote/recordstore-backend/internal/http/middleware"
	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/session"
)

type RouterConfig struct {
	Log          *logger.Logger
	SessionStore session.Store
	Identity     *middleware.IdentityMiddleware

	UserHandler     *handlers.UserHandler
	GuestHandler    *handlers.GuestHandler
	CartHandler     *handlers.CartHandler
	PurchaseHandler *handlers.PurchaseHandler
	AlbumHandler    *handlers.AlbumHandler
	HealthHandler   *handlers.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("recordstore-backend"))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.Errors(cfg.Log))
	router.Use(session.Middleware(cfg.SessionStore))
	router.Use(cfg.Identity.Attach())

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	users := router.Group("/users")
	{
		users.GET("", cfg.UserHandler.List)
		users.POST("", cfg.UserHandler.Register)

		users.GET("/guest", cfg.GuestHandler.Get)
		users.POST("/guest", cfg.GuestHandler.Create)

		users.GET("/:userId",
			middleware.RequireLogin(), middleware.SelfOnly("view"),
			cfg.UserHandler.Get)
		users.GET("/:userId/orders",
			middleware.RequireLogin(), middleware.SelfOnly("view orders for"),
			cfg.UserHandler.ListOrders)
		users.PUT("/:userId",
			middleware.RequireLogin(), middleware.AdminOnly(),
			cfg.UserHandler.Update)
		users.DELETE("/:userId",
			middleware.RequireLogin(), middleware.AdminOnly(),
			cfg.UserHandler.Delete)

		users.GET("/:userId/cart",
			middleware.RequireLogin(), middleware.SelfOnly("view the cart of"),
			cfg.CartHandler.ListAlbums)
		users.POST("/:userId/cart/:albumId",
			middleware.RequireLogin(), middleware.SelfOnly("shop for"),
			cfg.CartHandler.Add)
		users.PUT("/:userId/cart/:albumId", cfg.CartHandler.SetQuantity)
		users.DELETE("/:userId/cart", cfg.CartHandler.Clear)
		users.DELETE("/:userId/cart/:albumId",
			middleware.RequireLogin(), middleware.SelfOnly("shop for"),
			cfg.CartHandler.Remove)

		users.POST("/:userId/purchaseDetails", cfg.PurchaseHandler.Create)
	}

	albums := router.Group("/albums")
	{
		albums.GET("", cfg.AlbumHandler.List)
		albums.GET("/:albumId", cfg.AlbumHandler.Get)
		albums.POST("",
			middleware.RequireLogin(), middleware.AdminOnly(),
			cfg.AlbumHandler.Create)
		albums.PUT("/:albumId",
			middleware.RequireLogin(), middleware.AdminOnly(),
			cfg.AlbumHandler.Update)
		albums.DELETE("/:albumId",
			middleware.RequireLogin(), middleware.AdminOnly(),
			cfg.AlbumHandler.Delete)
	}

	return router
}
