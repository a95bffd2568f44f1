package repository

import (
	"errors"

	"github.com/fastbite/fastbite/internal/models"

	"gorm.io/gorm"
)

// SessionRepository is the session data access interface
type SessionRepository interface {
	GetByToken(token string) (*models.Session, error)
	Create(session *models.Session) error
	UpdateSelectedCategory(sessionID uint, category string) error
	WithTx(tx *gorm.DB) *GormSessionRepository
}

// GormSessionRepository GORM implementation
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates the session repository
func NewSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// WithTx binds a transaction
func (r *GormSessionRepository) WithTx(tx *gorm.DB) *GormSessionRepository {
	if tx == nil {
		return r
	}
	return &GormSessionRepository{db: tx}
}

// GetByToken looks a session up by its token, nil when absent
func (r *GormSessionRepository) GetByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Create inserts a session
func (r *GormSessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// UpdateSelectedCategory stores the session's active category filter
func (r *GormSessionRepository) UpdateSelectedCategory(sessionID uint, category string) error {
	return r.db.Model(&models.Session{}).Where("id = ?", sessionID).Update("selected_category", category).Error
}
