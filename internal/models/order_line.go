package models

import (
	"time"
)

// OrderLine is a frozen copy of one cart line at checkout time. Name and unit
// price are denormalized so the order stays readable even if the menu changes
// between seasons.
type OrderLine struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	MenuItemID uint      `gorm:"index;not null" json:"menu_item_id"`
	ItemName   string    `gorm:"type:varchar(200);not null" json:"item_name"`
	UnitPrice  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	LineTotal  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name.
func (OrderLine) TableName() string {
	return "order_lines"
}
