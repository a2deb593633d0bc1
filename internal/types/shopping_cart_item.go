package types

import (
	"time"
)

// ShoppingCartItem holds at most one row per (user, album) pair; the
// composite unique index backs the conditional upsert in the cart repo.
type ShoppingCartItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_cart_user_album" json:"userId"`
	AlbumID  uint `gorm:"not null;uniqueIndex:idx_cart_user_album" json:"albumId"`
	Quantity int  `gorm:"not null;default:0" json:"quantity"`

	Album *Album `gorm:"foreignKey:AlbumID" json:"album,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ShoppingCartItem) TableName() string {
	return "shopping_cart_item"
}
