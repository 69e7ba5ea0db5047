package database

import (
	"sync"
	"time"

	"github.com/ds124wfegd/digit-canvas/internal/canvas"
)

// Boards live in memory only: a session's drawings never survive the
// process, and an idle board is evicted by the cleanup worker.
type memoryBoardRepository struct {
	mu     sync.RWMutex
	boards map[string]*canvas.Board
	opts   canvas.Options
}

func NewBoardRepository(opts canvas.Options) BoardRepository {
	return &memoryBoardRepository{
		boards: make(map[string]*canvas.Board),
		opts:   opts,
	}
}

func (r *memoryBoardRepository) GetOrCreate(sessionID string) *canvas.Board {
	r.mu.RLock()
	board, ok := r.boards[sessionID]
	r.mu.RUnlock()
	if ok {
		return board
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if board, ok := r.boards[sessionID]; ok {
		return board
	}
	board = canvas.NewBoard(sessionID, r.opts)
	r.boards[sessionID] = board
	return board
}

func (r *memoryBoardRepository) Get(sessionID string) (*canvas.Board, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	board, ok := r.boards[sessionID]
	return board, ok
}

func (r *memoryBoardRepository) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.boards, sessionID)
	return nil
}

func (r *memoryBoardRepository) DeleteIdle(olderThan time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, board := range r.boards {
		if board.IdleFor() > olderThan {
			delete(r.boards, id)
			deleted++
		}
	}
	return deleted
}

func (r *memoryBoardRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.boards)
}
