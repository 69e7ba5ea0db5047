package transport

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ds124wfegd/digit-canvas/internal/canvas"
	"github.com/ds124wfegd/digit-canvas/internal/entity"
	"github.com/ds124wfegd/digit-canvas/internal/service"
)

const sessionCookie = "board_session"

type BoardHandler struct {
	service service.BoardService
}

func NewBoardHandler(service service.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// EnsureSession returns the caller's board session id, issuing a cookie on
// first contact. One board of ten slots exists per session.
func (h *BoardHandler) EnsureSession(c *gin.Context) string {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.New().String()
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}
	return id
}

func parseDigit(c *gin.Context) (int, error) {
	digit, err := strconv.Atoi(c.Param("digit"))
	if err != nil || digit < 0 || digit >= canvas.SlotCount {
		return 0, entity.ErrDigitOutOfRange
	}
	return digit, nil
}
