package repository

import (
	"errors"
	"time"

	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface
type OrderRepository interface {
	Create(order *models.Order) error
	CreateLines(lines []models.OrderLine) error
	GetByID(id uint) (*models.Order, error)
	GetBySessionAndID(sessionID, id uint) (*models.Order, error)
	ListBySession(sessionID uint) ([]models.Order, error)
	MarkNotified(orderID uint, at time.Time) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM implementation
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds a transaction
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts an order record
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateLines inserts the order's line snapshots
func (r *GormOrderRepository) CreateLines(lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.Create(&lines).Error
}

// GetByID fetches one order with its lines, nil when absent
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Lines").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetBySessionAndID fetches an order only if it belongs to the session
func (r *GormOrderRepository) GetBySessionAndID(sessionID, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Lines").Where("session_id = ?", sessionID).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListBySession returns the session's orders, newest first
func (r *GormOrderRepository) ListBySession(sessionID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Lines").
		Where("session_id = ?", sessionID).
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkNotified records that the kitchen acknowledged the order
func (r *GormOrderRepository) MarkNotified(orderID uint, at time.Time) error {
	return r.db.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"status":      constants.OrderStatusNotified,
		"notified_at": at,
	}).Error
}
