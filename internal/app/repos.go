package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/repos"
)

type Repos struct {
	User       repos.UserRepo
	Album      repos.AlbumRepo
	CartItem   repos.CartItemRepo
	CreditCard repos.CreditCardRepo
	Order      repos.OrderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		Album:      repos.NewAlbumRepo(db, log),
		CartItem:   repos.NewCartItemRepo(db, log),
		CreditCard: repos.NewCreditCardRepo(db, log),
		Order:      repos.NewOrderRepo(db, log),
	}
}
