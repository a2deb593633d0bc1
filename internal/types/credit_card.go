package types

import (
	"time"
)

// CreditCard is created once per user on first checkout submission and never
// updated through this API. Card number and CVV are never serialized.
type CreditCard struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	CardNumber      string `gorm:"column:card_number" json:"-"`
	ExpirationMonth int    `gorm:"column:expiration_month" json:"expiration_month"`
	ExpirationYear  int    `gorm:"column:expiration_year" json:"expiration_year"`
	CVV             string `gorm:"column:ccv" json:"-"`
	BillingAddress  string `gorm:"column:billing_address" json:"billing_address"`
	BillingCity     string `gorm:"column:billing_city" json:"billing_city"`
	BillingState    string `gorm:"column:billing_state" json:"billing_state"`
	BillingZip      string `gorm:"column:billing_zip" json:"billing_zip"`

	CreatedAt time.Time `json:"created_at"`
}

func (CreditCard) TableName() string {
	return "credit_card"
}
