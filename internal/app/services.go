package app

import (
	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/services"
)

type Services struct {
	Auth services.AuthService
}

func wireServices(log *logger.Logger, cfg Config) Services {
	log.Info("Wiring services...")
	return Services{
		Auth: services.NewAuthService(log, cfg.JWTSecretKey, cfg.TokenTTL),
	}
}
