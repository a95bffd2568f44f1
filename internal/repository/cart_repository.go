package repository

import (
	"errors"

	"github.com/fastbite/fastbite/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart line data access interface
type CartRepository interface {
	ListBySession(sessionID uint) ([]models.CartLine, error)
	GetBySessionAndItem(sessionID, menuItemID uint) (*models.CartLine, error)
	Create(line *models.CartLine) error
	UpdateQuantity(lineID uint, quantity int) error
	DeleteBySessionAndItem(sessionID, menuItemID uint) error
	DeleteByIDs(lineIDs []uint) error
	NextPosition(sessionID uint) (int, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM implementation
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds a transaction
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListBySession returns the session's cart lines in insertion order
func (r *GormCartRepository) ListBySession(sessionID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Preload("MenuItem").
		Where("session_id = ?", sessionID).
		Order("position asc, id asc").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// GetBySessionAndItem fetches the line for one menu item, nil when absent
func (r *GormCartRepository) GetBySessionAndItem(sessionID, menuItemID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("session_id = ? AND menu_item_id = ?", sessionID, menuItemID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Create inserts a cart line
func (r *GormCartRepository) Create(line *models.CartLine) error {
	return r.db.Create(line).Error
}

// UpdateQuantity sets a cart line's quantity
func (r *GormCartRepository) UpdateQuantity(lineID uint, quantity int) error {
	return r.db.Model(&models.CartLine{}).Where("id = ?", lineID).Update("quantity", quantity).Error
}

// DeleteBySessionAndItem removes the line for one menu item
func (r *GormCartRepository) DeleteBySessionAndItem(sessionID, menuItemID uint) error {
	return r.db.Where("session_id = ? AND menu_item_id = ?", sessionID, menuItemID).Delete(&models.CartLine{}).Error
}

// DeleteByIDs removes exactly the given cart lines and nothing else. Checkout
// uses it so lines it never saw are left untouched.
func (r *GormCartRepository) DeleteByIDs(lineIDs []uint) error {
	if len(lineIDs) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", lineIDs).Delete(&models.CartLine{}).Error
}

// NextPosition returns the position a newly appended line should take
func (r *GormCartRepository) NextPosition(sessionID uint) (int, error) {
	var max int
	err := r.db.Model(&models.CartLine{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
