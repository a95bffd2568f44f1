package queue

import (
	"encoding/json"

	"github.com/fastbite/fastbite/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced fires after a checkout commits
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// OrderPlacedPayload carries the committed order's ID
type OrderPlacedPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderPlacedTask creates the order placed task
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}
