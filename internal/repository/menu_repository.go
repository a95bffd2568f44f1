package repository

import (
	"errors"

	"github.com/fastbite/fastbite/internal/models"

	"gorm.io/gorm"
)

// MenuRepository is the menu item data access interface
type MenuRepository interface {
	List() ([]models.MenuItem, error)
	ListByCategory(category string) ([]models.MenuItem, error)
	GetByID(id uint) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Count() (int64, error)
}

// GormMenuRepository GORM implementation
type GormMenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates the menu repository
func NewMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// List returns every menu item in display order
func (r *GormMenuRepository) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory returns the items of one category in display order
func (r *GormMenuRepository) ListByCategory(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Where("category = ?", category).Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches one menu item
func (r *GormMenuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a menu item
func (r *GormMenuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Count returns the total number of menu items
func (r *GormMenuRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
