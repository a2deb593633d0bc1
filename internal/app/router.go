package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/server"
	"github.com/yungbote/recordstore-backend/internal/session"
)

func wireRouter(log *logger.Logger, store session.Store, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:          log,
		SessionStore: store,
		Identity:     mw.Identity,

		UserHandler:     handlerset.User,
		GuestHandler:    handlerset.Guest,
		CartHandler:     handlerset.Cart,
		PurchaseHandler: handlerset.Purchase,
		AlbumHandler:    handlerset.Album,
		HealthHandler:   handlerset.Health,
	})
}
