package public

import (
	"fmt"
	"strconv"

	"github.com/fastbite/fastbite/internal/http/response"
	"github.com/fastbite/fastbite/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest is the customer form submitted with the order
type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Checkout turns the cart into an order and empties the cart
func (h *Handler) Checkout(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "checkout payload is invalid")
		return
	}
	order, err := h.OrderService.Checkout(service.CheckoutInput{
		SessionID:       session.ID,
		CustomerName:    req.Name,
		Phone:           req.Phone,
		DeliveryAddress: req.Address,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, "checkout failed")
		return
	}
	response.SuccessWithMsg(c, fmt.Sprintf("order placed, total %s", order.TotalPrice.String()), order)
}

// GetOrder returns one of the session's orders
func (h *Handler) GetOrder(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	raw := c.Param("order_id")
	orderID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || orderID == 0 {
		response.BadRequest(c, "order_id is invalid")
		return
	}
	order, err := h.OrderService.GetForSession(session.ID, uint(orderID))
	if err != nil {
		respondWithMappedError(c, err, orderLookupErrorRules, "order fetch failed")
		return
	}
	response.Success(c, order)
}

// ListOrders returns the session's order history
func (h *Handler) ListOrders(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListForSession(session.ID)
	if err != nil {
		respondWithMappedError(c, err, orderLookupErrorRules, "order fetch failed")
		return
	}
	response.Success(c, gin.H{"orders": orders})
}
