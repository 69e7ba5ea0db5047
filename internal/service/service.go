package service

import (
	"context"

	"github.com/ds124wfegd/digit-canvas/internal/database"
	"github.com/ds124wfegd/digit-canvas/internal/entity"
	"github.com/ds124wfegd/digit-canvas/internal/pkg/uploader"
)

type BoardService interface {
	ApplyStroke(sessionID string, digit int, points []entity.Point) error
	ClearSlot(sessionID string, digit int) error
	ClearAll(sessionID string)
	Preview(sessionID string, digit int) ([]byte, bool, error)
	SubmitAll(ctx context.Context, sessionID string) ([]entity.UploadOutcome, error)
	Configured() bool
}

type boardService struct {
	repo       database.BoardRepository
	uploader   uploader.Uploader
	outputSize int
}

func NewBoardService(repo database.BoardRepository, up uploader.Uploader, outputSize int) BoardService {
	return &boardService{
		repo:       repo,
		uploader:   up,
		outputSize: outputSize,
	}
}
