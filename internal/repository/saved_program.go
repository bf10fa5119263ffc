package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/recruitme/recruitme-go/internal/model"
)

// SavedProgramRepository handles bookmark persistence operations.
type SavedProgramRepository struct {
	db *sql.DB
}

// NewSavedProgramRepository creates a new SavedProgramRepository.
func NewSavedProgramRepository(db *sql.DB) *SavedProgramRepository {
	return &SavedProgramRepository{db: db}
}

const savedProgramSelect = `SELECT s.id, s.user_id, s.program_id, s.saved_at,
		p.title, p.type, p.status, p.deadline, c.id, c.name, c.logo
	FROM saved_programs s
	JOIN programs p ON p.id = s.program_id
	JOIN companies c ON c.id = p.company_id`

// Create inserts a bookmark. An existing (user, program) pair yields
// ErrDuplicate and an unknown user or program yields ErrForeignKey.
func (r *SavedProgramRepository) Create(ctx context.Context, saved *model.SavedProgram) error {
	query := `INSERT INTO saved_programs (id, user_id, program_id, saved_at) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		saved.ID, saved.UserID, saved.ProgramID, toMillis(saved.SavedAt),
	)
	return translate(err)
}

// GetByID retrieves a bookmark with its program summary.
func (r *SavedProgramRepository) GetByID(ctx context.Context, id string) (*model.SavedProgram, error) {
	saved, err := scanSavedProgram(r.db.QueryRowContext(ctx, savedProgramSelect+` WHERE s.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

// ListByUser returns a user's bookmarks, most recent first.
func (r *SavedProgramRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedProgram, error) {
	rows, err := r.db.QueryContext(ctx,
		savedProgramSelect+` WHERE s.user_id = ? ORDER BY s.saved_at DESC, s.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := []model.SavedProgram{}
	for rows.Next() {
		s, err := scanSavedProgram(rows)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *s)
	}
	return saved, rows.Err()
}

// Delete removes a bookmark.
func (r *SavedProgramRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_programs WHERE id = ?`, id)
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

func scanSavedProgram(row rowScanner) (*model.SavedProgram, error) {
	var (
		saved       model.SavedProgram
		savedAt     int64
		programType string
		status      string
		deadline    int64
	)
	err := row.Scan(
		&saved.ID, &saved.UserID, &saved.ProgramID, &savedAt,
		&saved.Program.Title, &programType, &status, &deadline,
		&saved.Program.Company.ID, &saved.Program.Company.Name, &saved.Program.Company.Logo,
	)
	if err != nil {
		return nil, err
	}

	saved.SavedAt = fromMillis(savedAt)
	saved.Program.ID = saved.ProgramID
	saved.Program.Type = model.ProgramType(programType)
	saved.Program.Status = model.ProgramStatus(status)
	saved.Program.Deadline = fromMillis(deadline)
	return &saved, nil
}
