package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/apierr"
	"github.com/yungbote/recordstore-backend/internal/repos"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type AlbumHandler struct {
	albumRepo repos.AlbumRepo
}

func NewAlbumHandler(albumRepo repos.AlbumRepo) *AlbumHandler {
	return &AlbumHandler{albumRepo: albumRepo}
}

type albumInput struct {
	Title      *string `json:"title"`
	Artist     *string `json:"artist"`
	Genre      *string `json:"genre"`
	Year       *int    `json:"year"`
	PriceCents *int64  `json:"priceCents"`
	ImageURL   *string `json:"imageUrl"`
}

func (in *albumInput) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Artist != nil {
		fields["artist"] = *in.Artist
	}
	if in.Genre != nil {
		fields["genre"] = *in.Genre
	}
	if in.Year != nil {
		fields["year"] = *in.Year
	}
	if in.PriceCents != nil {
		fields["price_cents"] = *in.PriceCents
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	return fields
}

// GET /albums
func (ah *AlbumHandler) List(c *gin.Context) {
	albums, err := ah.albumRepo.List(c.Request.Context(), nil)
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	if albums == nil {
		albums = []*types.Album{}
	}
	c.JSON(http.StatusOK, albums)
}

// GET /albums/:albumId
func (ah *AlbumHandler) Get(c *gin.Context) {
	albumID, ok := pathID(c, "albumId")
	if !ok {
		return
	}

	album, err := ah.albumRepo.GetByID(c.Request.Context(), nil, albumID)
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, album)
}

// POST /albums
func (ah *AlbumHandler) Create(c *gin.Context) {
	var req albumInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	album := &types.Album{}
	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.Artist != nil {
		album.Artist = *req.Artist
	}
	if req.Genre != nil {
		album.Genre = *req.Genre
	}
	if req.Year != nil {
		album.Year = *req.Year
	}
	if req.PriceCents != nil {
		album.PriceCents = *req.PriceCents
	}
	if req.ImageURL != nil {
		album.ImageURL = *req.ImageURL
	}

	if err := ah.albumRepo.Create(c.Request.Context(), nil, album); err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.JSON(http.StatusCreated, album)
}

// PUT /albums/:albumId
func (ah *AlbumHandler) Update(c *gin.Context) {
	albumID, ok := pathID(c, "albumId")
	if !ok {
		return
	}

	var req albumInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	album, err := ah.albumRepo.Update(c.Request.Context(), nil, albumID, req.fields())
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, album)
}

// DELETE /albums/:albumId
func (ah *AlbumHandler) Delete(c *gin.Context) {
	albumID, ok := pathID(c, "albumId")
	if !ok {
		return
	}

	if err := ah.albumRepo.Delete(c.Request.Context(), nil, albumID); err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.Status(http.StatusOK)
}
