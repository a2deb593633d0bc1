package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/apierr"
	"github.com/yungbote/recordstore-backend/internal/platform/logger"
)

func TestErrorsRendersGenericFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	r := gin.New()
	r.Use(Errors(log))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("store exploded"))
	})
	r.GET("/teapot", func(c *gin.Context) {
		_ = c.Error(apierr.New(http.StatusTeapot, "short_and_stout", nil))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("plain error: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
	if got := rec.Body.String(); got != `{"error":"internal_error"}` {
		t.Fatalf("unexpected body: %q", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("apierr status: got=%d want=%d", rec.Code, http.StatusTeapot)
	}
	if got := rec.Body.String(); got != `{"error":"short_and_stout"}` {
		t.Fatalf("unexpected body: %q", got)
	}
}
