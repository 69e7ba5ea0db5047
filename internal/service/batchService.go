package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ds124wfegd/digit-canvas/internal/canvas"
	"github.com/ds124wfegd/digit-canvas/internal/entity"
)

// SubmitAll runs the submit-all batch: every non-blank slot is normalized,
// encoded and uploaded. All ten tasks run concurrently and fail
// independently; results are gathered positionally so the returned list is
// always in digit order 0-9 regardless of completion order.
//
// An unconfigured upload client aborts the whole batch before any per-digit
// work. A panic inside the batch is recovered and surfaced as a single
// error with no per-digit outcomes.
func (s *boardService) SubmitAll(ctx context.Context, sessionID string) ([]entity.UploadOutcome, error) {
	if !s.uploader.IsConfigured() {
		return nil, entity.ErrNotConfigured
	}

	board := s.repo.GetOrCreate(sessionID)

	var (
		results  [canvas.SlotCount]entity.UploadOutcome
		wg       sync.WaitGroup
		mu       sync.Mutex
		batchErr error
	)

	for digit := 0; digit < canvas.SlotCount; digit++ {
		wg.Add(1)
		go func(digit int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if batchErr == nil {
						batchErr = fmt.Errorf("submit batch failed: %s", entity.MessageOf(r))
					}
					mu.Unlock()
				}
			}()
			results[digit] = s.submitSlot(ctx, board, digit)
		}(digit)
	}
	wg.Wait()

	if batchErr != nil {
		logrus.Errorf("submit batch for board %s: %v", board.ID, batchErr)
		return nil, batchErr
	}

	logrus.WithFields(logrus.Fields{
		"board":    board.ID,
		"outcomes": summary(results[:]),
	}).Info("Submit batch completed")

	return results[:], nil
}

func (s *boardService) submitSlot(ctx context.Context, board *canvas.Board, digit int) entity.UploadOutcome {
	surface, err := board.Slot(digit)
	if err != nil {
		return entity.UploadOutcome{Digit: digit, Message: entity.MessageOf(err)}
	}

	img, empty := canvas.Normalize(surface.Snapshot(), s.outputSize)
	if empty {
		return entity.UploadOutcome{Digit: digit, Success: true, Skipped: true}
	}

	payload, err := canvas.EncodePNG(img)
	if err != nil {
		return entity.UploadOutcome{Digit: digit, Message: entity.MessageOf(err)}
	}

	if err := s.uploader.Upload(ctx, digit, payload); err != nil {
		return entity.UploadOutcome{Digit: digit, Message: entity.MessageOf(err)}
	}
	return entity.UploadOutcome{Digit: digit, Success: true}
}

func summary(outcomes []entity.UploadOutcome) string {
	uploaded, skipped, failed := 0, 0, 0
	for _, o := range outcomes {
		switch {
		case o.Skipped:
			skipped++
		case o.Success:
			uploaded++
		default:
			failed++
		}
	}
	return fmt.Sprintf("%d uploaded, %d skipped, %d failed", uploaded, skipped, failed)
}
