package models

import (
	"time"
)

// CartLine is one menu item plus its requested quantity inside a session's
// cart. The unique index keeps at most one line per item and session; Position
// preserves insertion order for display. Quantity is always >= 1 — a line
// dropping to zero is deleted, never stored.
type CartLine struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SessionID  uint      `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"session_id"`
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"menu_item_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

// TableName sets the table name.
func (CartLine) TableName() string {
	return "cart_lines"
}
