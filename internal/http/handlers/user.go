package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/http/middleware"
	"github.com/yungbote/recordstore-backend/internal/platform/apierr"
	"github.com/yungbote/recordstore-backend/internal/repos"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type UserHandler struct {
	userRepo  repos.UserRepo
	orderRepo repos.OrderRepo
}

func NewUserHandler(userRepo repos.UserRepo, orderRepo repos.OrderRepo) *UserHandler {
	return &UserHandler{userRepo: userRepo, orderRepo: orderRepo}
}

// GET /users
func (uh *UserHandler) List(c *gin.Context) {
	users, err := uh.userRepo.List(c.Request.Context(), nil)
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	if users == nil {
		users = []*types.User{}
	}
	c.JSON(http.StatusOK, users)
}

// POST /users
// body: { "firstName": "...", "lastName": "...", "email": "...", "password": "..." }
func (uh *UserHandler) Register(c *gin.Context) {
	if middleware.CurrentIdentity(c) != nil {
		c.String(http.StatusBadRequest, "You are already logged in")
		return
	}

	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	user, _, err := uh.userRepo.FindOrCreate(c.Request.Context(), nil, &types.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /users/:userId
func (uh *UserHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := uh.userRepo.GetByID(c.Request.Context(), nil, userID)
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	// Misses render as a JSON null body, not a 404.
	c.JSON(http.StatusOK, user)
}

// GET /users/:userId/orders
func (uh *UserHandler) ListOrders(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	orders, err := uh.orderRepo.ListByUser(c.Request.Context(), nil, userID)
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	if orders == nil {
		orders = []*types.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// PUT /users/:userId
func (uh *UserHandler) Update(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email"`
		Password  *string `json:"password"`
		IsAdmin   *bool   `json:"isAdmin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	fields := make(map[string]interface{})
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		fields["password"] = *req.Password
	}
	if req.IsAdmin != nil {
		fields["is_admin"] = *req.IsAdmin
	}

	if err := uh.userRepo.Update(c.Request.Context(), nil, userID, fields); err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.Status(http.StatusOK)
}

// DELETE /users/:userId
func (uh *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := uh.userRepo.Delete(c.Request.Context(), nil, userID); err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.Status(http.StatusOK)
}
