package public

import (
	"fmt"
	"strconv"

	"github.com/fastbite/fastbite/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest adds one unit of a menu item
type AddCartItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
}

// SetQuantityRequest overwrites a cart line's quantity
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the cart with totals
func (h *Handler) GetCart(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	summary, err := h.CartService.Summary(session.ID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, "cart fetch failed")
		return
	}
	response.Success(c, summary)
}

// AddCartItem adds one unit of a menu item to the cart
func (h *Handler) AddCartItem(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "menu_item_id is required")
		return
	}
	result, err := h.CartService.AddItem(session.ID, req.MenuItemID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, "cart update failed")
		return
	}
	response.SuccessWithMsg(c, fmt.Sprintf("%s added to cart", result.ItemName), result)
}

// RemoveCartItem drops the line for a menu item
func (h *Handler) RemoveCartItem(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(session.ID, itemID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, "cart update failed")
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// SetCartItemQuantity overwrites a line's quantity, zero removes the line
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		response.BadRequest(c, "quantity is required")
		return
	}
	if err := h.CartService.SetQuantity(session.ID, itemID, *req.Quantity); err != nil {
		respondWithMappedError(c, err, cartErrorRules, "cart update failed")
		return
	}
	response.Success(c, gin.H{"updated": true})
}

func parseItemID(c *gin.Context) (uint, bool) {
	raw := c.Param("item_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "item_id is invalid")
		return 0, false
	}
	return uint(id), true
}
