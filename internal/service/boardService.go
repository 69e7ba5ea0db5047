package service

import (
	"github.com/ds124wfegd/digit-canvas/internal/canvas"
	"github.com/ds124wfegd/digit-canvas/internal/entity"
)

// ApplyStroke renders one pen-down-to-pen-up path on a digit slot.
func (s *boardService) ApplyStroke(sessionID string, digit int, points []entity.Point) error {
	if len(points) == 0 {
		return entity.ErrEmptyStroke
	}

	board := s.repo.GetOrCreate(sessionID)
	surface, err := board.Slot(digit)
	if err != nil {
		return err
	}

	surface.BeginStroke(points[0])
	for _, p := range points[1:] {
		surface.ExtendStroke(p)
	}
	surface.EndStroke()
	return nil
}

func (s *boardService) ClearSlot(sessionID string, digit int) error {
	board := s.repo.GetOrCreate(sessionID)
	surface, err := board.Slot(digit)
	if err != nil {
		return err
	}
	surface.Reset()
	return nil
}

func (s *boardService) ClearAll(sessionID string) {
	s.repo.GetOrCreate(sessionID).ClearAll()
}

// Preview returns the normalized PNG for one slot and whether it is blank.
// A blank slot yields a nil payload.
func (s *boardService) Preview(sessionID string, digit int) ([]byte, bool, error) {
	board := s.repo.GetOrCreate(sessionID)
	surface, err := board.Slot(digit)
	if err != nil {
		return nil, false, err
	}

	img, empty := canvas.Normalize(surface.Snapshot(), s.outputSize)
	if empty {
		return nil, true, nil
	}
	payload, err := canvas.EncodePNG(img)
	if err != nil {
		return nil, false, err
	}
	return payload, false, nil
}

func (s *boardService) Configured() bool {
	return s.uploader.IsConfigured()
}
