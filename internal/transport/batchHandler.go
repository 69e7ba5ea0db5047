package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ds124wfegd/digit-canvas/internal/entity"
)

// SubmitBatch drives submit-all for the caller's board. A configuration
// error or a batch-level failure produces a single global error with no
// per-digit outcomes.
func (h *BoardHandler) SubmitBatch(c *gin.Context) {
	outcomes, err := h.service.SubmitAll(c.Request.Context(), h.EnsureSession(c))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNotConfigured) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": entity.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, entity.SubmitResponse{Outcomes: outcomes})
}
