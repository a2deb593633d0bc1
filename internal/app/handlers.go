package app

import (
	"github.com/yungbote/recordstore-backend/internal/http/handlers"
	"github.com/yungbote/recordstore-backend/internal/platform/logger"
)

type Handlers struct {
	User     *handlers.UserHandler
	Guest    *handlers.GuestHandler
	Cart     *handlers.CartHandler
	Purchase *handlers.PurchaseHandler
	Album    *handlers.AlbumHandler
	Health   *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, reposet Repos) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:     handlers.NewUserHandler(reposet.User, reposet.Order),
		Guest:    handlers.NewGuestHandler(log, reposet.User),
		Cart:     handlers.NewCartHandler(reposet.CartItem),
		Purchase: handlers.NewPurchaseHandler(reposet.CreditCard),
		Album:    handlers.NewAlbumHandler(reposet.Album),
		Health:   handlers.NewHealthHandler(),
	}
}
