package models

import (
	"time"
)

// MenuItem is one entry of the fixed menu. Rows are seeded once at startup and
// never mutated during a session; SortOrder preserves the catalog definition
// order the storefront displays.
type MenuItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:varchar(1000)" json:"description"`
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`
	SortOrder   int       `gorm:"not null;default:0;index" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name.
func (MenuItem) TableName() string {
	return "menu_items"
}
