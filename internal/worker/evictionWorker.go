package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ds124wfegd/digit-canvas/internal/database"
)

// BoardEvictionWorker destroys boards whose session has gone idle. Boards
// are session-transient; eviction is the server-side analogue of closing
// the browser tab.
type BoardEvictionWorker struct {
	repo     database.BoardRepository
	interval time.Duration
	ttl      time.Duration
}

func NewBoardEvictionWorker(repo database.BoardRepository, interval, ttl time.Duration) *BoardEvictionWorker {
	return &BoardEvictionWorker{
		repo:     repo,
		interval: interval,
		ttl:      ttl,
	}
}

func (w *BoardEvictionWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Board eviction worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Board eviction worker stopped")
			return
		case <-ticker.C:
			w.evictIdleBoards()
		}
	}
}

func (w *BoardEvictionWorker) evictIdleBoards() {
	deleted := w.repo.DeleteIdle(w.ttl)
	if deleted == 0 {
		return
	}

	logrus.Infof("Evicted %d idle boards, %d remaining", deleted, w.repo.Count())
}
