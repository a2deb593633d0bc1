package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/apierr"
	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/repos"
	"github.com/yungbote/recordstore-backend/internal/session"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type GuestHandler struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewGuestHandler(log *logger.Logger, userRepo repos.UserRepo) *GuestHandler {
	return &GuestHandler{log: log.With("handler", "GuestHandler"), userRepo: userRepo}
}

// GET /users/guest
func (gh *GuestHandler) Get(c *gin.Context) {
	sess := session.FromContext(c)
	if sess == nil {
		_ = c.Error(apierr.New(http.StatusInternalServerError, "session_unavailable", nil))
		return
	}

	raw, err := sess.GuestUser(c.Request.Context())
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	if raw == nil {
		c.Status(http.StatusOK)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// POST /users/guest
func (gh *GuestHandler) Create(c *gin.Context) {
	sess := session.FromContext(c)
	if sess == nil {
		_ = c.Error(apierr.New(http.StatusInternalServerError, "session_unavailable", nil))
		return
	}

	guest := &types.User{FirstName: "Guest", LastName: "User"}
	if err := gh.userRepo.Create(c.Request.Context(), nil, guest); err != nil {
		gh.log.Error("Guest creation failed", "error", err)
		_ = c.Error(apierr.Internal(err))
		return
	}

	raw, err := json.Marshal(guest)
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	if err := sess.SetGuestUser(c.Request.Context(), raw); err != nil {
		gh.log.Error("Storing guest in session failed", "error", err)
		_ = c.Error(apierr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, guest)
}
