package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/recruitme/recruitme-go/internal/model"
)

// CompanyRepository handles company account persistence operations.
type CompanyRepository struct {
	db *sql.DB
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, name, email, password_hash, website, cnpj, logo, description, phone, created_at, updated_at`

// Create inserts a new company. A taken email yields ErrDuplicate.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	query := `INSERT INTO companies (` + companyColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		company.ID, company.Name, company.Email, company.PasswordHash,
		company.Website, company.CNPJ, company.Logo, company.Description, company.Phone,
		toMillis(company.CreatedAt), toMillis(company.UpdatedAt),
	)
	return translate(err)
}

// GetByEmail retrieves a company by its email address.
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE email = ?`
	return scanCompany(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a company by its ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = ?`
	return scanCompany(r.db.QueryRowContext(ctx, query, id))
}

func scanCompany(row *sql.Row) (*model.Company, error) {
	var (
		company   model.Company
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&company.ID, &company.Name, &company.Email, &company.PasswordHash,
		&company.Website, &company.CNPJ, &company.Logo, &company.Description, &company.Phone,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	company.CreatedAt = fromMillis(createdAt)
	company.UpdatedAt = fromMillis(updatedAt)
	return &company, nil
}
