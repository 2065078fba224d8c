package mapping

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

type saveRequest struct {
	Components []Component `json:"components"`
	Steps      []string    `json:"steps"`
}

// --------------------------------------------------
// Create / replace the mapping for one menu item
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	m, err := h.service.Save(
		c.Request.Context(),
		c.Param("id"),
		c.Param("menuItemID"),
		req.Components,
		req.Steps,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mapping": m})
}

// --------------------------------------------------
// Fetch one mapping (consumed by editing tools and
// recipe export)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"), c.Param("menuItemID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mapping": m})
}

// --------------------------------------------------
// List all mappings for a restaurant
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	mappings, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mappings": mappings})
}

// --------------------------------------------------
// Delete a mapping
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.Param("menuItemID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "mapping deleted"})
}
