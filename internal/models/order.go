package models

import (
	"time"
)

// Order is the checkout submission record: customer contact info plus a
// snapshot of the cart at submission time. Created only when checkout
// succeeds; the cart it came from is already empty by then.
type Order struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	OrderNo         string     `gorm:"uniqueIndex;not null" json:"order_no"`
	SessionID       uint       `gorm:"index;not null" json:"session_id"`
	CustomerName    string     `gorm:"type:varchar(200);not null" json:"customer_name"`
	Phone           string     `gorm:"type:varchar(50);not null" json:"phone"`
	DeliveryAddress string     `gorm:"type:varchar(500);not null" json:"delivery_address"`
	Status          string     `gorm:"index;not null" json:"status"`
	TotalPrice      Money      `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	TotalCount      int        `gorm:"not null;default:0" json:"total_count"`
	NotifiedAt      *time.Time `json:"notified_at,omitempty"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Lines []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
