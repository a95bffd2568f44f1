package service

import (
	"context"
	"strings"
	"time"

	"github.com/fastbite/fastbite/internal/cache"
	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/repository"
)

const menuCacheKey = "menu:items"

// MenuService serves the catalog view
type MenuService struct {
	repo         repository.MenuRepository
	categoryRepo repository.CategoryRepository
	cacheTTL     time.Duration
}

// NewMenuService creates the menu service
func NewMenuService(repo repository.MenuRepository, categoryRepo repository.CategoryRepository, cacheTTL time.Duration) *MenuService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &MenuService{repo: repo, categoryRepo: categoryRepo, cacheTTL: cacheTTL}
}

// Categories returns the filter choices: the "all" sentinel first, then the
// seeded enumeration in display order. A category with no items stays listed.
func (s *MenuService) Categories() ([]string, error) {
	names, err := s.categoryRepo.ListNames()
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(names)+1)
	categories = append(categories, constants.CategoryAll)
	categories = append(categories, names...)
	return categories, nil
}

// VisibleItems returns the menu filtered by the selected category, in catalog
// order. The "all" sentinel disables the filter.
func (s *MenuService) VisibleItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	category = NormalizeCategory(category)
	if category != constants.CategoryAll {
		exists, err := s.categoryRepo.Exists(category)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrInvalidCategory
		}
		return s.repo.ListByCategory(category)
	}

	items, hit, err := s.cachedItems(ctx)
	if err != nil {
		logger.Warnw("menu cache read failed", "error", err)
	}
	if hit {
		return items, nil
	}
	items, err = s.repo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, menuCacheKey, items, s.cacheTTL); err != nil {
		logger.Warnw("menu cache write failed", "error", err)
	}
	return items, nil
}

// ValidateCategory reports whether the category may be selected
func (s *MenuService) ValidateCategory(category string) error {
	category = NormalizeCategory(category)
	if category == constants.CategoryAll {
		return nil
	}
	exists, err := s.categoryRepo.Exists(category)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidCategory
	}
	return nil
}

// InvalidateCache drops the cached menu projection
func (s *MenuService) InvalidateCache(ctx context.Context) {
	if err := cache.Del(ctx, menuCacheKey); err != nil {
		logger.Warnw("menu cache invalidate failed", "error", err)
	}
}

func (s *MenuService) cachedItems(ctx context.Context) ([]models.MenuItem, bool, error) {
	var items []models.MenuItem
	hit, err := cache.GetJSON(ctx, menuCacheKey, &items)
	if err != nil || !hit {
		return nil, false, err
	}
	return items, true, nil
}

// NormalizeCategory trims and lowercases a category name, defaulting empty
// input to the "all" sentinel
func NormalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return constants.CategoryAll
	}
	return category
}
