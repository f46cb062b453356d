package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/models"
	"placementhub/internal/db"
	"placementhub/internal/pkg/apperrors"
	"placementhub/internal/pkg/dberrors"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(database *db.PostgresDB) *CompanyRepository {
	return &CompanyRepository{
		db: database.Pool,
	}
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (name, industry_id, contact_person, contact_email, contact_phone, min_cgpa)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		company.Name,
		company.IndustryID,
		company.ContactPerson,
		company.ContactEmail,
		company.ContactPhone,
		company.MinCGPA,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCompanyAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrIndustryNotFound
		}
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	query := `
		SELECT id, name, industry_id, contact_person, contact_email, contact_phone, min_cgpa, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var company models.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.IndustryID,
		&company.ContactPerson,
		&company.ContactEmail,
		&company.ContactPhone,
		&company.MinCGPA,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return &company, nil
}

// GetAll retrieves all companies, optionally filtered by industry
func (r *CompanyRepository) GetAll(ctx context.Context, industryID int64) ([]*models.Company, error) {
	query := `
		SELECT id, name, industry_id, contact_person, contact_email, contact_phone, min_cgpa, created_at, updated_at
		FROM companies
		WHERE ($1 = 0 OR industry_id = $1)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, industryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		var company models.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.IndustryID,
			&company.ContactPerson,
			&company.ContactEmail,
			&company.ContactPhone,
			&company.MinCGPA,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// Update replaces every mutable column of a company
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies
		SET name = $1, industry_id = $2, contact_person = $3, contact_email = $4,
		    contact_phone = $5, min_cgpa = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		company.Name,
		company.IndustryID,
		company.ContactPerson,
		company.ContactEmail,
		company.ContactPhone,
		company.MinCGPA,
		company.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCompanyAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrIndustryNotFound
		}
		return fmt.Errorf("error updating company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// Delete removes a company. Deletion is restricted while placements
// still reference the company, so placement facts are never orphaned
// silently.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM companies WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCompanyInUse
		}
		return fmt.Errorf("error deleting company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}
