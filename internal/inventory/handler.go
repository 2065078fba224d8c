package inventory

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type itemRequest struct {
	Name        string  `json:"name"`
	PrimaryUnit string  `json:"primary_unit"`
	Stock       float64 `json:"stock"`
}

// --------------------------------------------------
// Create inventory item
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	restaurantID := c.Param("id")

	var req itemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.Create(
		c.Request.Context(),
		restaurantID,
		req.Name,
		req.PrimaryUnit,
		req.Stock,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"item": item}
	if !h.service.UnitRecognized(item.PrimaryUnit) {
		resp["warning"] = "primary unit is not a recognized mass/volume/count unit; quantities in other units will not convert"
	}
	c.JSON(http.StatusCreated, resp)
}

// --------------------------------------------------
// List restaurant inventory
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// Get single item
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"), c.Param("itemID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// --------------------------------------------------
// Update item (name, unit, stock level)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req itemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.Update(
		c.Request.Context(),
		c.Param("id"),
		c.Param("itemID"),
		req.Name,
		req.PrimaryUnit,
		req.Stock,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// --------------------------------------------------
// Delete item
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.Param("itemID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inventory item deleted"})
}
