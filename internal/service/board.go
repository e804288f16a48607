package service

import (
	"context"

	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// BoardsAPI is the slice of the platform API the board service needs.
type BoardsAPI interface {
	CreateBoard(ctx context.Context, token string, in model.BoardInput) (*model.Board, error)
	ListBoards(ctx context.Context, token string, isActive *bool) ([]model.Board, int, error)
	GetBoard(ctx context.Context, token, id string) (*model.Board, error)
	UpdateBoard(ctx context.Context, token, id string, in model.BoardInput) (*model.Board, error)
	DeleteBoard(ctx context.Context, token, id string) error
}

// BoardServiceOptions groups dependencies for BoardService.
type BoardServiceOptions struct {
	API BoardsAPI
}

// BoardService manages examination boards.
type BoardService struct {
	api BoardsAPI
}

// NewBoardService constructs a new BoardService.
func NewBoardService(opts BoardServiceOptions) *BoardService {
	return &BoardService{api: opts.API}
}

func (s *BoardService) List(ctx context.Context, token string, isActive *bool) ([]model.Board, int, error) {
	return s.api.ListBoards(ctx, token, isActive)
}

func (s *BoardService) GetByID(ctx context.Context, token, id string) (*model.Board, error) {
	if id == "" {
		return nil, apperrors.NotFound("board not found")
	}
	return s.api.GetBoard(ctx, token, id)
}

func (s *BoardService) Create(ctx context.Context, token string, in model.BoardInput) (*model.Board, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, fieldErrors(errs)
	}
	return s.api.CreateBoard(ctx, token, in)
}

func (s *BoardService) Update(ctx context.Context, token, id string, in model.BoardInput) (*model.Board, error) {
	if id == "" {
		return nil, apperrors.NotFound("board not found")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return nil, fieldErrors(errs)
	}
	return s.api.UpdateBoard(ctx, token, id, in)
}

func (s *BoardService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("board not found")
	}
	return s.api.DeleteBoard(ctx, token, id)
}
