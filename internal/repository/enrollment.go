package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/recruitme/recruitme-go/internal/model"
)

// EnrollmentRepository handles enrollment persistence operations.
type EnrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const enrollmentSelect = `SELECT e.id, e.user_id, e.program_id, e.status, e.enrolled_at,
		p.title, p.type, p.deadline, c.id, c.name, c.logo
	FROM enrollments e
	JOIN programs p ON p.id = e.program_id
	JOIN companies c ON c.id = p.company_id`

// Create inserts an enrollment. An existing (user, program) pair yields
// ErrDuplicate and an unknown user or program yields ErrForeignKey.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	query := `INSERT INTO enrollments (id, user_id, program_id, status, enrolled_at) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		enrollment.ID, enrollment.UserID, enrollment.ProgramID,
		string(enrollment.Status), toMillis(enrollment.EnrolledAt),
	)
	return translate(err)
}

// GetByID retrieves an enrollment with its program summary.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*model.Enrollment, error) {
	enrollment, err := scanEnrollment(r.db.QueryRowContext(ctx, enrollmentSelect+` WHERE e.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

// ListByUser returns a user's enrollments, most recent first.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx,
		enrollmentSelect+` WHERE e.user_id = ? ORDER BY e.enrolled_at DESC, e.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := []model.Enrollment{}
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, *enrollment)
	}
	return enrollments, rows.Err()
}

// Delete removes an enrollment.
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEnrollment(row rowScanner) (*model.Enrollment, error) {
	var (
		enrollment  model.Enrollment
		status      string
		enrolledAt  int64
		programType string
		deadline    int64
	)
	err := row.Scan(
		&enrollment.ID, &enrollment.UserID, &enrollment.ProgramID, &status, &enrolledAt,
		&enrollment.Program.Title, &programType, &deadline,
		&enrollment.Program.Company.ID, &enrollment.Program.Company.Name, &enrollment.Program.Company.Logo,
	)
	if err != nil {
		return nil, err
	}

	enrollment.Status = model.EnrollmentStatus(status)
	enrollment.EnrolledAt = fromMillis(enrolledAt)
	enrollment.Program.ID = enrollment.ProgramID
	enrollment.Program.Type = model.ProgramType(programType)
	enrollment.Program.Deadline = fromMillis(deadline)
	return &enrollment, nil
}
