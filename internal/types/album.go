package types

import (
	"time"
)

type Album struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"not null;column:title" json:"title"`
	Artist     string `gorm:"column:artist" json:"artist"`
	Genre      string `gorm:"column:genre" json:"genre"`
	Year       int    `gorm:"column:year" json:"year"`
	PriceCents int64  `gorm:"not null;default:0;column:price_cents" json:"priceCents"`
	ImageURL   string `gorm:"column:image_url" json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Album) TableName() string {
	return "album"
}
