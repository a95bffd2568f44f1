package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/models"
	"github.com/fastbite/fastbite/internal/provider"
	"github.com/fastbite/fastbite/internal/queue"
	"github.com/fastbite/fastbite/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupWorkerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:worker_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderLine{}); err != nil {
		t.Fatalf("migrate orders failed: %v", err)
	}
	container := &provider.Container{
		OrderRepo: repository.NewOrderRepository(db),
	}
	return NewConsumer(container), db
}

func newOrderPlacedTask(t *testing.T, orderID uint) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(queue.OrderPlacedPayload{OrderID: orderID})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(queue.TaskOrderPlaced, body)
}

func TestHandleOrderPlacedMarksOrderNotified(t *testing.T) {
	consumer, db := setupWorkerTest(t)
	order := &models.Order{
		OrderNo:         "FB20250901000001",
		SessionID:       1,
		CustomerName:    "Jane",
		Phone:           "555-0101",
		DeliveryAddress: "1 Road",
		Status:          constants.OrderStatusReceived,
		TotalPrice:      models.NewMoneyFromDecimal(decimal.NewFromInt(149)),
		TotalCount:      1,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := consumer.handleOrderPlaced(context.Background(), newOrderPlacedTask(t, order.ID)); err != nil {
		t.Fatalf("handle order placed failed: %v", err)
	}

	var got models.Order
	if err := db.First(&got, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if got.Status != constants.OrderStatusNotified {
		t.Fatalf("status want %s got %s", constants.OrderStatusNotified, got.Status)
	}
	if got.NotifiedAt == nil {
		t.Fatalf("notified_at should be set")
	}

	// a second delivery of the same task must not error or double-handle
	if err := consumer.handleOrderPlaced(context.Background(), newOrderPlacedTask(t, order.ID)); err != nil {
		t.Fatalf("duplicate delivery should be swallowed, got %v", err)
	}
}

func TestHandleOrderPlacedUnknownOrderIsSwallowed(t *testing.T) {
	consumer, _ := setupWorkerTest(t)
	if err := consumer.handleOrderPlaced(context.Background(), newOrderPlacedTask(t, 424242)); err != nil {
		t.Fatalf("unknown order should be swallowed, got %v", err)
	}
}
