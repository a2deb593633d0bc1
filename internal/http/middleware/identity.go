package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/services"
)

const identityKey = "identity"

type IdentityMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewIdentityMiddleware(log *logger.Logger, authService services.AuthService) *IdentityMiddleware {
	return &IdentityMiddleware{log: log.With("middleware", "IdentityMiddleware"), authService: authService}
}

// Attach resolves the bearer token into an Identity on the gin context. It
// never rejects: routes that need an identity say so with the guards below.
func (im *IdentityMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		identity, err := im.authService.ParseToken(tokenString)
		if err != nil {
			im.log.Debug("Discarding unparsable bearer token", "error", err)
			c.Next()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}

// CurrentIdentity returns the caller's identity, or nil for anonymous
// requests.
func CurrentIdentity(c *gin.Context) *services.Identity {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*services.Identity)
	return identity
}
