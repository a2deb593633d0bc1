package types

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"userId"`
	Status     OrderStatus    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalCents int64          `gorm:"not null;default:0" json:"totalCents"`
	Items      datatypes.JSON `gorm:"column:items" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Order) TableName() string {
	return "order"
}
