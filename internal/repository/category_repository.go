package repository

import (
	"github.com/fastbite/fastbite/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository is the category data access interface
type CategoryRepository interface {
	List() ([]models.Category, error)
	ListNames() ([]string, error)
	Exists(name string) (bool, error)
	Create(category *models.Category) error
	Count() (int64, error)
}

// GormCategoryRepository GORM implementation
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the category repository
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List returns every category in display order
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListNames returns the category names in display order
func (r *GormCategoryRepository) ListNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Category{}).
		Order("sort_order asc, id asc").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Exists reports whether the category is part of the enumeration
func (r *GormCategoryRepository) Exists(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a category
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Count returns the total number of categories
func (r *GormCategoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
