package service

import (
	"strings"

	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/repository"

	"github.com/google/uuid"
)

// SessionService manages anonymous visitor sessions and their category filter
type SessionService struct {
	sessionRepo  repository.SessionRepository
	categoryRepo repository.CategoryRepository
}

// NewSessionService creates the session service
func NewSessionService(sessionRepo repository.SessionRepository, categoryRepo repository.CategoryRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, categoryRepo: categoryRepo}
}

// Ensure returns the session for the given token, creating a fresh one when
// the token is blank or unknown. New sessions start with the "all" filter.
func (s *SessionService) Ensure(token string) (*models.Session, error) {
	token = strings.TrimSpace(token)
	if token != "" {
		session, err := s.sessionRepo.GetByToken(token)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
	}
	session := &models.Session{
		Token:            uuid.NewString(),
		SelectedCategory: constants.CategoryAll,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectCategory switches the session's active category filter. Unknown
// categories are rejected and the previous selection stays in place.
func (s *SessionService) SelectCategory(session *models.Session, category string) error {
	if session == nil || session.ID == 0 {
		return ErrSessionNotFound
	}
	category = NormalizeCategory(category)
	if category != constants.CategoryAll {
		exists, err := s.categoryRepo.Exists(category)
		if err != nil {
			return err
		}
		if !exists {
			return ErrInvalidCategory
		}
	}
	if err := s.sessionRepo.UpdateSelectedCategory(session.ID, category); err != nil {
		return err
	}
	session.SelectedCategory = category
	return nil
}
