package bom

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

type usageRequest struct {
	Lines []SoldLine `json:"lines"`
}

// --------------------------------------------------
// Aggregate ingredient usage over a batch of sold
// lines (lines arrive pre-filtered from upstream)
// --------------------------------------------------
func (h *Handler) Usage(c *gin.Context) {
	restaurantID := c.Param("id")

	var req usageRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines is required"})
		return
	}
	for i, line := range req.Lines {
		if strings.TrimSpace(line.MenuItemID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "every line needs a menu_item_id"})
			return
		}
		if line.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "line quantity cannot be negative"})
			return
		}
		req.Lines[i].MenuItemID = strings.TrimSpace(line.MenuItemID)
	}

	rows, err := h.engine.ComputeUsage(c.Request.Context(), restaurantID, req.Lines)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"usage": rows})
}

// --------------------------------------------------
// Maximum sellable units of one menu item given
// current stock
// --------------------------------------------------
func (h *Handler) Capacity(c *gin.Context) {
	restaurantID := c.Param("id")
	menuItemID := strings.TrimSpace(c.Param("menuItemID"))
	if menuItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu item id is required"})
		return
	}

	var activeOption *string
	if opt, ok := c.GetQuery("modifier_option"); ok {
		activeOption = &opt
	}

	result, err := h.engine.ComputeCapacity(c.Request.Context(), restaurantID, menuItemID, activeOption)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
