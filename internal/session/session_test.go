package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	raw, err := store.GetGuestUser(ctx, "tok")
	if err != nil {
		t.Fatalf("GetGuestUser: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil for unknown token, got %q", raw)
	}

	if err := store.SetGuestUser(ctx, "tok", []byte(`{"id":1}`)); err != nil {
		t.Fatalf("SetGuestUser: %v", err)
	}
	raw, err = store.GetGuestUser(ctx, "tok")
	if err != nil {
		t.Fatalf("GetGuestUser: %v", err)
	}
	if string(raw) != `{"id":1}` {
		t.Fatalf("unexpected value: %q", raw)
	}
}

func TestMiddlewareMintsAndReusesToken(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	store := NewMemoryStore()
	r := gin.New()
	r.Use(Middleware(store))
	r.GET("/", func(c *gin.Context) {
		sess := FromContext(c)
		if sess == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sess.Token)
	})

	// First request: no cookie, one gets minted.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	minted := rec.Body.String()
	if minted == "" {
		t.Fatalf("expected a minted token")
	}
	cookies := rec.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == CookieName {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil || sessionCookie.Value != minted {
		t.Fatalf("expected %s cookie with value %q, got %+v", CookieName, minted, cookies)
	}

	// Second request with the cookie: same token, no new cookie.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Body.String(); got != minted {
		t.Fatalf("token changed between requests: got=%q want=%q", got, minted)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no new cookie expected on a returning client")
	}
}
