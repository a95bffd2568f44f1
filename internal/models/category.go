package models

import (
	"time"
)

// Category is one entry of the fixed category enumeration. Categories exist
// independently of menu items: a category with no items is still listable and
// selectable, it just shows an empty menu.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0;index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
