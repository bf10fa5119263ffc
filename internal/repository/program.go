package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/recruitme/recruitme-go/internal/model"
)

// ProgramRepository handles program and program tag persistence operations.
type ProgramRepository struct {
	db *sql.DB
}

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(db *sql.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

const programSelect = `SELECT p.id, p.company_id, p.title, p.description, p.type, p.status,
		p.deadline, p.enrollment_end_date, p.max_participants, p.image_url,
		p.requirements, p.benefits, p.created_at, p.updated_at,
		c.name, c.logo, c.description, c.website,
		(SELECT COUNT(*) FROM enrollments e WHERE e.program_id = p.id)
	FROM programs p
	JOIN companies c ON c.id = p.company_id`

type rowScanner interface {
	Scan(dest ...any) error
}

// Create inserts a program and its tags in one transaction.
// An unknown company yields ErrForeignKey.
func (r *ProgramRepository) Create(ctx context.Context, program *model.Program) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO programs (id, company_id, title, description, type, status,
		deadline, enrollment_end_date, max_participants, image_url, requirements, benefits,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, query,
		program.ID, program.CompanyID, program.Title, program.Description,
		string(program.Type), string(program.Status),
		toMillis(program.Deadline), toMillis(program.EnrollmentEndDate),
		nullableInt(program.MaxParticipants), program.ImageURL,
		program.Requirements, program.Benefits,
		toMillis(program.CreatedAt), toMillis(program.UpdatedAt),
	)
	if err != nil {
		return translate(err)
	}

	if err := insertTags(ctx, tx, program.ID, program.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves a program with its company detail, tags and participant count.
func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*model.Program, error) {
	row := r.db.QueryRowContext(ctx, programSelect+` WHERE p.id = ?`, id)

	program, err := scanProgram(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tags, err := loadTags(ctx, r.db, []string{program.ID})
	if err != nil {
		return nil, err
	}
	program.Tags = tags[program.ID]

	return program, nil
}

// List returns the programs matching filter, newest first.
func (r *ProgramRepository) List(ctx context.Context, filter model.ProgramFilter) ([]model.Program, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CompanyID != "" {
		conds = append(conds, "p.company_id = ?")
		args = append(args, filter.CompanyID)
	}
	if filter.Type != "" {
		conds = append(conds, "p.type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Status != "" {
		conds = append(conds, "p.status = ?")
		args = append(args, string(filter.Status))
	}
	if len(filter.Tags) > 0 {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM program_tags t WHERE t.program_id = p.id AND t.tag IN (%s))",
			placeholders(len(filter.Tags))))
		for _, tag := range filter.Tags {
			args = append(args, tag)
		}
	}

	query := programSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []model.Program{}
	var ids []string
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		// Listings carry the short company summary only.
		program.Company.Description = ""
		program.Company.Website = ""
		programs = append(programs, *program)
		ids = append(ids, program.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := loadTags(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range programs {
		programs[i].Tags = tags[programs[i].ID]
	}

	return programs, nil
}

// Update writes every mutable column of program and replaces its tag set
// in one transaction. A missing program yields ErrNotFound.
func (r *ProgramRepository) Update(ctx context.Context, program *model.Program) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM programs WHERE id = ?`, program.ID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	query := `UPDATE programs SET title = ?, description = ?, type = ?, status = ?,
		deadline = ?, enrollment_end_date = ?, max_participants = ?, image_url = ?,
		requirements = ?, benefits = ?, updated_at = ?
		WHERE id = ?`

	_, err = tx.ExecContext(ctx, query,
		program.Title, program.Description, string(program.Type), string(program.Status),
		toMillis(program.Deadline), toMillis(program.EnrollmentEndDate),
		nullableInt(program.MaxParticipants), program.ImageURL,
		program.Requirements, program.Benefits, toMillis(program.UpdatedAt),
		program.ID,
	)
	if err != nil {
		return translate(err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM program_tags WHERE program_id = ?`, program.ID); err != nil {
		return err
	}
	if err := insertTags(ctx, tx, program.ID, program.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a program. Its tags, enrollments and bookmarks cascade.
func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
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

func insertTags(ctx context.Context, tx *sql.Tx, programID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	values := make([]string, len(tags))
	args := make([]any, 0, len(tags)*2)
	for i, tag := range tags {
		values[i] = "(?, ?)"
		args = append(args, programID, tag)
	}

	query := `INSERT INTO program_tags (program_id, tag) VALUES ` + strings.Join(values, ", ")
	_, err := tx.ExecContext(ctx, query, args...)
	return translate(err)
}

// loadTags returns the tags of each program in ids, alphabetically ordered.
func loadTags(ctx context.Context, q querier, ids []string) (map[string][]string, error) {
	tags := make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return tags, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT program_id, tag FROM program_tags WHERE program_id IN (%s) ORDER BY program_id, tag`,
		placeholders(len(ids)))
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var programID, tag string
		if err := rows.Scan(&programID, &tag); err != nil {
			return nil, err
		}
		tags[programID] = append(tags[programID], tag)
	}
	return tags, rows.Err()
}

func scanProgram(row rowScanner) (*model.Program, error) {
	var (
		program         model.Program
		programType     string
		status          string
		deadline        int64
		enrollmentEnd   int64
		maxParticipants sql.NullInt64
		createdAt       int64
		updatedAt       int64
	)
	err := row.Scan(
		&program.ID, &program.CompanyID, &program.Title, &program.Description,
		&programType, &status, &deadline, &enrollmentEnd, &maxParticipants,
		&program.ImageURL, &program.Requirements, &program.Benefits,
		&createdAt, &updatedAt,
		&program.Company.Name, &program.Company.Logo,
		&program.Company.Description, &program.Company.Website,
		&program.Participants,
	)
	if err != nil {
		return nil, err
	}

	program.Type = model.ProgramType(programType)
	program.Status = model.ProgramStatus(status)
	program.Deadline = fromMillis(deadline)
	program.EnrollmentEndDate = fromMillis(enrollmentEnd)
	if maxParticipants.Valid {
		n := int(maxParticipants.Int64)
		program.MaxParticipants = &n
	}
	program.CreatedAt = fromMillis(createdAt)
	program.UpdatedAt = fromMillis(updatedAt)
	program.Company.ID = program.CompanyID
	return &program, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
