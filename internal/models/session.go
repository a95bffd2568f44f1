package models

import (
	"time"
)

// Session is one storefront visitor. A session owns exactly one cart and holds
// the currently selected menu category ("all" means unfiltered).
type Session struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Token            string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	SelectedCategory string    `gorm:"type:varchar(50);not null;default:'all'" json:"selected_category"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Session) TableName() string {
	return "sessions"
}
