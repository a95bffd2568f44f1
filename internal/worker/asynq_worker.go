package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fastbite/fastbite/internal/constants"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/provider"
	"github.com/fastbite/fastbite/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the task consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

// handleOrderPlaced pushes the order to the kitchen. Here that means logging
// the confirmation and flipping the order to notified; a kitchen display
// integration would hang off this handler.
func (c *Consumer) handleOrderPlaced(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_placed_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	if order.Status != constants.OrderStatusReceived {
		logger.Debugw("worker_order_placed_skip_already_handled", "order_id", order.ID, "status", order.Status)
		return nil
	}

	if err := c.OrderRepo.MarkNotified(order.ID, time.Now()); err != nil {
		logger.Warnw("worker_order_placed_mark_notified_failed", "order_id", order.ID, "error", err)
		return err
	}
	logger.Infow("kitchen notified",
		"order_no", order.OrderNo,
		"customer", order.CustomerName,
		"total_price", order.TotalPrice.String(),
		"total_count", order.TotalCount,
	)
	return nil
}
