package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/repository"
)

var (
	ErrAlreadyEnrolled = model.NewError(model.KindAlreadyEnrolled, model.CodeAlreadyEnrolled,
		"you are already enrolled in this program")
	ErrEnrollmentNotFound = model.NewError(model.KindNotFound, model.CodeEnrollmentNotFound,
		"enrollment not found")
)

// EnrollmentService manages student enrollments in programs.
type EnrollmentService struct {
	base
	enrollments EnrollmentStore
	links       linkChecks
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollments EnrollmentStore, users UserStore, programs ProgramStore) *EnrollmentService {
	return &EnrollmentService{
		base:        newBase(),
		enrollments: enrollments,
		links:       linkChecks{users: users, programs: programs},
	}
}

// Enroll enrolls the calling student in a program.
func (s *EnrollmentService) Enroll(ctx context.Context, callerID string, req model.ProgramRefRequest) (model.EnrollmentResponse, error) {
	programID, err := s.links.check(ctx, callerID, req.ProgramID)
	if err != nil {
		return model.EnrollmentResponse{}, err
	}

	enrollment := &model.Enrollment{
		ID:         s.newID(),
		UserID:     callerID,
		ProgramID:  programID,
		Status:     model.EnrollmentEnrolled,
		EnrolledAt: s.now(),
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return model.EnrollmentResponse{}, ErrAlreadyEnrolled
		case errors.Is(err, repository.ErrForeignKey):
			// The program was deleted between the check and the insert.
			return model.EnrollmentResponse{}, ErrProgramNotFound
		}
		return model.EnrollmentResponse{}, fmt.Errorf("create enrollment: %w", err)
	}

	created, err := s.enrollments.GetByID(ctx, enrollment.ID)
	if err != nil {
		return model.EnrollmentResponse{}, fmt.Errorf("get enrollment: %w", err)
	}
	return created.Response(), nil
}

// Cancel removes an enrollment owned by the caller.
func (s *EnrollmentService) Cancel(ctx context.Context, callerID, id string) error {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("get enrollment: %w", err)
	}
	if err := Authorize(callerID, enrollment.UserID); err != nil {
		return err
	}

	if err := s.enrollments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}

// ListMine returns the caller's enrollments, most recent first.
func (s *EnrollmentService) ListMine(ctx context.Context, callerID string) ([]model.EnrollmentResponse, error) {
	enrollments, err := s.enrollments.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return model.EnrollmentsResponse(enrollments), nil
}

// linkChecks holds the preconditions shared by enrollments and bookmarks:
// the caller is a student and the program exists.
type linkChecks struct {
	users    UserStore
	programs ProgramStore
}

func (c linkChecks) check(ctx context.Context, callerID, programID string) (string, error) {
	ref := model.ProgramRefRequest{ProgramID: strings.TrimSpace(programID)}
	if err := validateRequest(ref); err != nil {
		return "", err
	}
	programID = ref.ProgramID

	if _, err := c.users.GetByID(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", errForbidden
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if _, err := c.programs.GetByID(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrProgramNotFound
		}
		return "", fmt.Errorf("get program: %w", err)
	}
	return programID, nil
}
