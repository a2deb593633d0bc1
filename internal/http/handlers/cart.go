package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/apierr"
	"github.com/yungbote/recordstore-backend/internal/repos"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type CartHandler struct {
	cartRepo repos.CartItemRepo
}

func NewCartHandler(cartRepo repos.CartItemRepo) *CartHandler {
	return &CartHandler{cartRepo: cartRepo}
}

type cartQuantityInput struct {
	Quantity types.Quantity `json:"quantity"`
}

// GET /users/:userId/cart
func (ch *CartHandler) ListAlbums(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	albums, err := ch.cartRepo.ListAlbums(c.Request.Context(), nil, userID)
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	if albums == nil {
		albums = []*types.Album{}
	}
	c.JSON(http.StatusOK, albums)
}

// POST /users/:userId/cart/:albumId
// body: { "quantity": 2 } — merges additively with any existing row.
func (ch *CartHandler) Add(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	albumID, ok := pathID(c, "albumId")
	if !ok {
		return
	}

	var req cartQuantityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	if err := ch.cartRepo.AddQuantity(c.Request.Context(), nil, userID, albumID, req.Quantity.Int()); err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.Status(http.StatusOK)
}

// PUT /users/:userId/cart/:albumId
// body: { "quantity": 3 } — overwrites; "" counts as zero.
func (ch *CartHandler) SetQuantity(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	albumID, ok := pathID(c, "albumId")
	if !ok {
		return
	}

	var req cartQuantityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	item, err := ch.cartRepo.SetQuantity(c.Request.Context(), nil, userID, albumID, req.Quantity.Int())
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /users/:userId/cart
func (ch *CartHandler) Clear(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := ch.cartRepo.Clear(c.Request.Context(), nil, userID); err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.Status(http.StatusOK)
}

// DELETE /users/:userId/cart/:albumId
func (ch *CartHandler) Remove(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	albumID, ok := pathID(c, "albumId")
	if !ok {
		return
	}

	if err := ch.cartRepo.Remove(c.Request.Context(), nil, userID, albumID); err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.Status(http.StatusOK)
}
