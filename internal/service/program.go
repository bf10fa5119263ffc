package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/repository"
)

var ErrProgramNotFound = model.NewError(model.KindNotFound, model.CodeProgramNotFound,
	"program not found")

// errDuplicateTags is returned when the store treats two normalized tags as equal.
var errDuplicateTags = model.NewValidationError(model.FieldError{Field: "tags", Message: "must be unique"})

// ProgramService handles program listing and company-owned program management.
type ProgramService struct {
	base
	programs  ProgramStore
	companies CompanyStore
}

// NewProgramService creates a new ProgramService.
func NewProgramService(programs ProgramStore, companies CompanyStore) *ProgramService {
	return &ProgramService{
		base:      newBase(),
		programs:  programs,
		companies: companies,
	}
}

// List returns the programs matching q, newest first.
func (s *ProgramService) List(ctx context.Context, q model.ProgramQuery) ([]model.ProgramResponse, error) {
	q.Type = strings.TrimSpace(q.Type)
	q.Status = strings.TrimSpace(q.Status)
	if err := validateRequest(q); err != nil {
		return nil, err
	}

	filter := model.ProgramFilter{
		Type:   model.ProgramType(q.Type),
		Status: model.ProgramStatus(q.Status),
	}
	if len(q.Tags) > 0 {
		filter.Tags = normalizeTags(q.Tags)
	}

	programs, err := s.programs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return model.ProgramsResponse(programs), nil
}

// Get returns a single program with its company detail.
func (s *ProgramService) Get(ctx context.Context, id string) (model.ProgramResponse, error) {
	program, err := s.getProgram(ctx, id)
	if err != nil {
		return model.ProgramResponse{}, err
	}
	return program.Response(), nil
}

// ListByCompany returns the programs owned by the calling company.
func (s *ProgramService) ListByCompany(ctx context.Context, callerID string) ([]model.ProgramResponse, error) {
	if err := s.requireCompany(ctx, callerID); err != nil {
		return nil, err
	}

	programs, err := s.programs.List(ctx, model.ProgramFilter{CompanyID: callerID})
	if err != nil {
		return nil, fmt.Errorf("list company programs: %w", err)
	}
	return model.ProgramsResponse(programs), nil
}

// Create publishes a new program owned by the calling company.
func (s *ProgramService) Create(ctx context.Context, callerID string, req model.CreateProgramRequest) (model.ProgramResponse, error) {
	if err := s.requireCompany(ctx, callerID); err != nil {
		return model.ProgramResponse{}, err
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Type = strings.TrimSpace(req.Type)
	trimPtr(req.Status)
	trimPtr(req.ImageURL)
	if err := validateRequest(req); err != nil {
		return model.ProgramResponse{}, err
	}

	now := s.now()
	program := &model.Program{
		ID:              s.newID(),
		CompanyID:       callerID,
		Title:           req.Title,
		Description:     req.Description,
		Type:            model.ProgramType(req.Type),
		Status:          model.StatusOpen,
		Tags:            normalizeTags(req.Tags),
		MaxParticipants: req.MaxParticipants,
		ImageURL:        deref(req.ImageURL),
		Requirements:    deref(req.Requirements),
		Benefits:        deref(req.Benefits),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	program.Deadline, _ = parseDate(req.Deadline)
	program.EnrollmentEndDate, _ = parseDate(req.EnrollmentEndDate)
	if req.Status != nil {
		program.Status = model.ProgramStatus(*req.Status)
	}

	if err := s.programs.Create(ctx, program); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			return model.ProgramResponse{}, errForbidden
		case errors.Is(err, repository.ErrDuplicate):
			return model.ProgramResponse{}, errDuplicateTags
		}
		return model.ProgramResponse{}, fmt.Errorf("create program: %w", err)
	}

	return s.Get(ctx, program.ID)
}

// Update applies a partial update to a program owned by the caller.
func (s *ProgramService) Update(ctx context.Context, callerID, id string, req model.UpdateProgramRequest) (model.ProgramResponse, error) {
	program, err := s.getProgram(ctx, id)
	if err != nil {
		return model.ProgramResponse{}, err
	}
	if err := Authorize(callerID, program.CompanyID); err != nil {
		return model.ProgramResponse{}, err
	}

	for _, field := range []*string{req.Title, req.Description, req.Type, req.Status, req.ImageURL} {
		trimPtr(field)
	}
	if err := validateRequest(req); err != nil {
		return model.ProgramResponse{}, err
	}

	if req.Title != nil {
		program.Title = *req.Title
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.Type != nil {
		program.Type = model.ProgramType(*req.Type)
	}
	if req.Status != nil {
		program.Status = model.ProgramStatus(*req.Status)
	}
	if req.Deadline != nil {
		program.Deadline, _ = parseDate(*req.Deadline)
	}
	if req.EnrollmentEndDate != nil {
		program.EnrollmentEndDate, _ = parseDate(*req.EnrollmentEndDate)
	}
	if req.MaxParticipants != nil {
		program.MaxParticipants = req.MaxParticipants
	}
	if req.Tags != nil {
		program.Tags = normalizeTags(req.Tags)
	}
	if req.ImageURL != nil {
		program.ImageURL = *req.ImageURL
	}
	if req.Requirements != nil {
		program.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		program.Benefits = *req.Benefits
	}

	program.UpdatedAt = s.now()
	if err := s.programs.Update(ctx, program); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return model.ProgramResponse{}, ErrProgramNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return model.ProgramResponse{}, errDuplicateTags
		}
		return model.ProgramResponse{}, fmt.Errorf("update program: %w", err)
	}

	return s.Get(ctx, program.ID)
}

// Delete removes a program owned by the caller.
func (s *ProgramService) Delete(ctx context.Context, callerID, id string) error {
	program, err := s.getProgram(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(callerID, program.CompanyID); err != nil {
		return err
	}

	if err := s.programs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

func (s *ProgramService) getProgram(ctx context.Context, id string) (*model.Program, error) {
	program, err := s.programs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	return program, nil
}

// requireCompany rejects callers that are not registered companies.
func (s *ProgramService) requireCompany(ctx context.Context, callerID string) error {
	if _, err := s.companies.GetByID(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errForbidden
		}
		return fmt.Errorf("get company: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
