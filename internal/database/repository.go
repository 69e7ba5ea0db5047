package database

import (
	"time"

	"github.com/ds124wfegd/digit-canvas/internal/canvas"
)

type BoardRepository interface {
	GetOrCreate(sessionID string) *canvas.Board
	Get(sessionID string) (*canvas.Board, bool)
	Delete(sessionID string) error
	DeleteIdle(olderThan time.Duration) int
	Count() int
}
