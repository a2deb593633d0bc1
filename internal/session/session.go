package session

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName carries the opaque session token on the client side.
	CookieName = "record_session"

	cookieMaxAge = 24 * 60 * 60

	contextKey = "session"
)

// Session binds a client's cookie token to the shared Store.
type Session struct {
	Token string
	store Store
}

func (s *Session) GuestUser(ctx context.Context) ([]byte, error) {
	return s.store.GetGuestUser(ctx, s.Token)
}

func (s *Session) SetGuestUser(ctx context.Context, raw []byte) error {
	return s.store.SetGuestUser(ctx, s.Token, raw)
}

// Middleware attaches a Session to every request, minting a cookie token for
// clients that do not have one yet.
func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(CookieName, token, cookieMaxAge, "/", "", false, true)
		}
		c.Set(contextKey, &Session{Token: token, store: store})
		c.Next()
	}
}

// FromContext returns the request's Session, or nil outside the middleware.
func FromContext(c *gin.Context) *Session {
	val, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*Session)
	return sess
}
