package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/queue"
	"github.com/fastbite/fastbite/internal/repository"

	"gorm.io/gorm"
)

// CheckoutInput is the customer form submitted with the order
type CheckoutInput struct {
	SessionID       uint
	CustomerName    string
	Phone           string
	DeliveryAddress string
}

// OrderService implements checkout and order lookups
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	menuRepo    repository.MenuRepository
	queueClient *queue.Client
}

// NewOrderService creates the order service
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, menuRepo repository.MenuRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		menuRepo:    menuRepo,
		queueClient: queueClient,
	}
}

// Checkout turns the session's cart into an order. The cart read, the order row,
// its line snapshots and the removal of the captured cart lines commit in one
// transaction: every line on the order leaves the cart, everything else stays.
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.SessionID == 0 {
		return nil, ErrSessionNotFound
	}
	if err := validateCheckoutInput(&input); err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		SessionID:       input.SessionID,
		CustomerName:    input.CustomerName,
		Phone:           input.Phone,
		DeliveryAddress: input.DeliveryAddress,
		Status:          constants.OrderStatusReceived,
	}

	// The cart is read inside the transaction and only the lines captured
	// there are deleted, so a line added concurrently either lands on this
	// order or stays in the cart for the next one.
	var orderLines []models.OrderLine
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		lines, err := cartRepo.ListBySession(input.SessionID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := models.NewMoneyFromInt(0)
		orderLines = make([]models.OrderLine, 0, len(lines))
		lineIDs := make([]uint, 0, len(lines))
		for _, line := range lines {
			item := line.MenuItem
			if item == nil || item.ID == 0 {
				fetched, err := s.menuRepo.GetByID(line.MenuItemID)
				if err != nil {
					return err
				}
				if fetched == nil {
					return ErrItemNotFound
				}
				item = fetched
			}
			lineTotal := item.UnitPrice.MulInt(line.Quantity)
			total = total.AddMoney(lineTotal)
			order.TotalCount += line.Quantity
			orderLines = append(orderLines, models.OrderLine{
				MenuItemID: item.ID,
				ItemName:   item.Name,
				UnitPrice:  item.UnitPrice,
				Quantity:   line.Quantity,
				LineTotal:  lineTotal,
			})
			lineIDs = append(lineIDs, line.ID)
		}
		order.TotalPrice = total

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range orderLines {
			orderLines[i].OrderID = order.ID
		}
		if err := orderRepo.CreateLines(orderLines); err != nil {
			return err
		}
		return cartRepo.DeleteByIDs(lineIDs)
	})
	if err != nil {
		return nil, err
	}
	order.Lines = orderLines

	if err := s.queueClient.EnqueueOrderPlaced(queue.OrderPlacedPayload{OrderID: order.ID}); err != nil {
		// the order already committed, the kitchen loses a push but not the order
		logger.Warnw("order placed enqueue failed", "order_id", order.ID, "error", err)
	}

	logger.Infow("order placed",
		"order_no", order.OrderNo,
		"session_id", order.SessionID,
		"total_price", order.TotalPrice.String(),
		"total_count", order.TotalCount,
	)
	return order, nil
}

// GetForSession fetches one of the session's orders
func (s *OrderService) GetForSession(sessionID, orderID uint) (*models.Order, error) {
	if sessionID == 0 {
		return nil, ErrSessionNotFound
	}
	order, err := s.orderRepo.GetBySessionAndID(sessionID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForSession returns the session's order history, newest first
func (s *OrderService) ListForSession(sessionID uint) ([]models.Order, error) {
	if sessionID == 0 {
		return nil, ErrSessionNotFound
	}
	return s.orderRepo.ListBySession(sessionID)
}

func validateCheckoutInput(input *CheckoutInput) error {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.DeliveryAddress = strings.TrimSpace(input.DeliveryAddress)
	if input.CustomerName == "" {
		return NewValidationError("name")
	}
	if input.Phone == "" {
		return NewValidationError("phone")
	}
	if input.DeliveryAddress == "" {
		return NewValidationError("address")
	}
	return nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("FB%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
