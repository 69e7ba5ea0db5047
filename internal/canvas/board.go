package canvas

import (
	"sync"
	"time"

	"github.com/ds124wfegd/digit-canvas/internal/entity"
)

// SlotCount is fixed: one slot per digit 0-9.
const SlotCount = 10

// Board holds the ten digit surfaces of one browser session.
type Board struct {
	ID string

	mu      sync.Mutex
	slots   [SlotCount]*Surface
	touched time.Time
}

func NewBoard(id string, opts Options) *Board {
	b := &Board{ID: id, touched: time.Now()}
	for i := range b.slots {
		b.slots[i] = NewSurface(opts)
	}
	return b
}

// Slot returns the surface for a digit and refreshes the idle timer.
func (b *Board) Slot(digit int) (*Surface, error) {
	if digit < 0 || digit >= SlotCount {
		return nil, entity.ErrDigitOutOfRange
	}
	b.Touch()
	return b.slots[digit], nil
}

// ClearAll resets every slot to its initial empty state. Synchronous and
// total: no partial clears.
func (b *Board) ClearAll() {
	for _, s := range b.slots {
		s.Reset()
	}
	b.Touch()
}

func (b *Board) Touch() {
	b.mu.Lock()
	b.touched = time.Now()
	b.mu.Unlock()
}

// IdleFor reports how long the board has gone without being touched.
func (b *Board) IdleFor() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return time.Since(b.touched)
}
