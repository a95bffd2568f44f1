package service

import (
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/repository"
)

// CartLineDetail is one cart line joined with its menu item, for responses
type CartLineDetail struct {
	MenuItemID uint             `json:"menu_item_id"`
	Quantity   int              `json:"quantity"`
	UnitPrice  models.Money     `json:"unit_price"`
	LineTotal  models.Money     `json:"line_total"`
	MenuItem   *models.MenuItem `json:"menu_item"`
}

// CartSummary is the whole cart plus its derived totals
type CartSummary struct {
	Lines      []CartLineDetail `json:"lines"`
	TotalCount int              `json:"total_count"`
	TotalPrice models.Money     `json:"total_price"`
}

// AddResult reports what an add did, so the caller can phrase the notification
type AddResult struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// CartService implements the cart operations
type CartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
}

// NewCartService creates the cart service
func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository) *CartService {
	return &CartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

// AddItem puts one unit of a menu item into the cart. An existing line gains
// one; otherwise a new line with quantity 1 is appended at the end.
func (s *CartService) AddItem(sessionID, menuItemID uint) (*AddResult, error) {
	if sessionID == 0 {
		return nil, ErrSessionNotFound
	}
	item, err := s.menuRepo.GetByID(menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	line, err := s.cartRepo.GetBySessionAndItem(sessionID, menuItemID)
	if err != nil {
		return nil, err
	}
	if line != nil {
		quantity := line.Quantity + 1
		if err := s.cartRepo.UpdateQuantity(line.ID, quantity); err != nil {
			return nil, err
		}
		return &AddResult{ItemName: item.Name, Quantity: quantity}, nil
	}

	position, err := s.cartRepo.NextPosition(sessionID)
	if err != nil {
		return nil, err
	}
	line = &models.CartLine{
		SessionID:  sessionID,
		MenuItemID: menuItemID,
		Quantity:   1,
		Position:   position,
	}
	if err := s.cartRepo.Create(line); err != nil {
		return nil, err
	}
	return &AddResult{ItemName: item.Name, Quantity: 1}, nil
}

// RemoveItem drops the whole line for a menu item. Removing an item that is
// not in the cart is a no-op.
func (s *CartService) RemoveItem(sessionID, menuItemID uint) error {
	if sessionID == 0 {
		return ErrSessionNotFound
	}
	return s.cartRepo.DeleteBySessionAndItem(sessionID, menuItemID)
}

// SetQuantity overwrites a line's quantity. Zero removes the line, negative is
// rejected, and a positive quantity for an item not in the cart is a no-op.
func (s *CartService) SetQuantity(sessionID, menuItemID uint, quantity int) error {
	if sessionID == 0 {
		return ErrSessionNotFound
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.cartRepo.DeleteBySessionAndItem(sessionID, menuItemID)
	}
	line, err := s.cartRepo.GetBySessionAndItem(sessionID, menuItemID)
	if err != nil {
		return err
	}
	if line == nil {
		return nil
	}
	return s.cartRepo.UpdateQuantity(line.ID, quantity)
}

// Summary returns the cart lines in insertion order with totals recomputed
// from the lines themselves.
func (s *CartService) Summary(sessionID uint) (*CartSummary, error) {
	if sessionID == 0 {
		return nil, ErrSessionNotFound
	}
	lines, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	summary := &CartSummary{Lines: make([]CartLineDetail, 0, len(lines))}
	total := models.NewMoneyFromInt(0)
	for _, line := range lines {
		item := line.MenuItem
		if item == nil || item.ID == 0 {
			fetched, err := s.menuRepo.GetByID(line.MenuItemID)
			if err != nil {
				return nil, err
			}
			item = fetched
		}
		if item == nil {
			// menu item vanished since it was added, drop the stale line
			_ = s.cartRepo.DeleteBySessionAndItem(sessionID, line.MenuItemID)
			continue
		}
		lineTotal := item.UnitPrice.MulInt(line.Quantity)
		total = total.AddMoney(lineTotal)
		summary.TotalCount += line.Quantity
		summary.Lines = append(summary.Lines, CartLineDetail{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  lineTotal,
			MenuItem:   item,
		})
	}
	summary.TotalPrice = total
	return summary, nil
}
