package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/recruitme/recruitme-go/internal/model"
)

// UserStore persists student accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) error
}

// CompanyStore persists company accounts.
type CompanyStore interface {
	Create(ctx context.Context, company *model.Company) error
	GetByEmail(ctx context.Context, email string) (*model.Company, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
}

// ProgramStore persists programs and their tags.
type ProgramStore interface {
	Create(ctx context.Context, program *model.Program) error
	GetByID(ctx context.Context, id string) (*model.Program, error)
	List(ctx context.Context, filter model.ProgramFilter) ([]model.Program, error)
	Update(ctx context.Context, program *model.Program) error
	Delete(ctx context.Context, id string) error
}

// EnrollmentStore persists enrollments.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	GetByID(ctx context.Context, id string) (*model.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error)
	Delete(ctx context.Context, id string) error
}

// SavedProgramStore persists bookmarks.
type SavedProgramStore interface {
	Create(ctx context.Context, saved *model.SavedProgram) error
	GetByID(ctx context.Context, id string) (*model.SavedProgram, error)
	ListByUser(ctx context.Context, userID string) ([]model.SavedProgram, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// base carries the clock and id source shared by every service; tests replace them.
type base struct {
	now   func() time.Time
	newID func() string
}

func newBase() base {
	return base{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}
