package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/repository"
)

var (
	ErrAlreadySaved = model.NewError(model.KindAlreadySaved, model.CodeAlreadySaved,
		"program already saved")
	ErrSavedProgramNotFound = model.NewError(model.KindNotFound, model.CodeSavedProgramNotFound,
		"saved program not found")
)

// SavedProgramService manages student bookmarks on programs.
type SavedProgramService struct {
	base
	saved SavedProgramStore
	links linkChecks
}

// NewSavedProgramService creates a new SavedProgramService.
func NewSavedProgramService(saved SavedProgramStore, users UserStore, programs ProgramStore) *SavedProgramService {
	return &SavedProgramService{
		base:  newBase(),
		saved: saved,
		links: linkChecks{users: users, programs: programs},
	}
}

// Save bookmarks a program for the calling student.
func (s *SavedProgramService) Save(ctx context.Context, callerID string, req model.ProgramRefRequest) (model.SavedProgramResponse, error) {
	programID, err := s.links.check(ctx, callerID, req.ProgramID)
	if err != nil {
		return model.SavedProgramResponse{}, err
	}

	saved := &model.SavedProgram{
		ID:        s.newID(),
		UserID:    callerID,
		ProgramID: programID,
		SavedAt:   s.now(),
	}
	if err := s.saved.Create(ctx, saved); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return model.SavedProgramResponse{}, ErrAlreadySaved
		case errors.Is(err, repository.ErrForeignKey):
			return model.SavedProgramResponse{}, ErrProgramNotFound
		}
		return model.SavedProgramResponse{}, fmt.Errorf("create saved program: %w", err)
	}

	created, err := s.saved.GetByID(ctx, saved.ID)
	if err != nil {
		return model.SavedProgramResponse{}, fmt.Errorf("get saved program: %w", err)
	}
	return created.Response(), nil
}

// Unsave removes a bookmark owned by the caller.
func (s *SavedProgramService) Unsave(ctx context.Context, callerID, id string) error {
	saved, err := s.saved.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSavedProgramNotFound
		}
		return fmt.Errorf("get saved program: %w", err)
	}
	if err := Authorize(callerID, saved.UserID); err != nil {
		return err
	}

	if err := s.saved.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSavedProgramNotFound
		}
		return fmt.Errorf("delete saved program: %w", err)
	}
	return nil
}

// ListMine returns the caller's bookmarks, most recent first.
func (s *SavedProgramService) ListMine(ctx context.Context, callerID string) ([]model.SavedProgramResponse, error) {
	saved, err := s.saved.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list saved programs: %w", err)
	}
	return model.SavedProgramsResponse(saved), nil
}
