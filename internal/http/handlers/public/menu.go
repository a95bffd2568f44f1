package public

import (
	"github.com/fastbite/fastbite/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the menu filtered by the session's selected category. An
// explicit ?category= overrides the stored selection without changing it.
func (h *Handler) GetMenu(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	category := c.Query("category")
	if category == "" {
		category = session.SelectedCategory
	}

	items, err := h.MenuService.VisibleItems(c.Request.Context(), category)
	if err != nil {
		respondWithMappedError(c, err, menuErrorRules, "menu fetch failed")
		return
	}
	response.Success(c, gin.H{
		"items":             items,
		"selected_category": session.SelectedCategory,
	})
}

// GetCategories returns the category filter choices
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.MenuService.Categories()
	if err != nil {
		respondWithMappedError(c, err, menuErrorRules, "category fetch failed")
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// SelectCategoryRequest switches the session's category filter
type SelectCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// SelectCategory stores the session's category selection
func (h *Handler) SelectCategory(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "category is required")
		return
	}
	if err := h.SessionService.SelectCategory(session, req.Category); err != nil {
		respondWithMappedError(c, err, menuErrorRules, "category select failed")
		return
	}
	response.Success(c, gin.H{"selected_category": session.SelectedCategory})
}
