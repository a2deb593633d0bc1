package app

import (
	"github.com/yungbote/recordstore-backend/internal/http/middleware"
	"github.com/yungbote/recordstore-backend/internal/platform/logger"
)

type Middleware struct {
	Identity *middleware.IdentityMiddleware
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Identity: middleware.NewIdentityMiddleware(log, serviceset.Auth),
	}
}
