package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ds124wfegd/digit-canvas/internal/entity"
)

func (h *BoardHandler) ApplyStroke(c *gin.Context) {
	digit, err := parseDigit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req entity.StrokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stroke payload"})
		return
	}

	if err := h.service.ApplyStroke(h.EnsureSession(c), digit, req.Points); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"digit": digit, "points": len(req.Points)})
}

func (h *BoardHandler) ClearSlot(c *gin.Context) {
	digit, err := parseDigit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.ClearSlot(h.EnsureSession(c), digit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot cleared"})
}

func (h *BoardHandler) ClearBoard(c *gin.Context) {
	h.service.ClearAll(h.EnsureSession(c))
	c.JSON(http.StatusOK, gin.H{"message": "Board cleared"})
}

func (h *BoardHandler) Preview(c *gin.Context) {
	digit, err := parseDigit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, empty, err := h.service.Preview(h.EnsureSession(c), digit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": entity.MessageOf(err)})
		return
	}
	if empty {
		c.Status(http.StatusNoContent)
		return
	}

	c.Data(http.StatusOK, "image/png", payload)
}
