package types

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null;column:first_name" json:"firstName"`
	LastName  string `gorm:"not null;column:last_name" json:"lastName"`
	Email     string `gorm:"index;column:email" json:"email"`
	Password  string `gorm:"column:password" json:"-"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`

	CartItems []ShoppingCartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cartItems,omitempty"`
	Orders    []Order            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreditCard *CreditCard       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "user"
}
