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

// IndustryRepository handles database operations for industries
type IndustryRepository struct {
	db *pgxpool.Pool
}

// NewIndustryRepository creates a new industry repository
func NewIndustryRepository(database *db.PostgresDB) *IndustryRepository {
	return &IndustryRepository{
		db: database.Pool,
	}
}

// Create inserts a new industry
func (r *IndustryRepository) Create(ctx context.Context, industry *models.Industry) error {
	query := `
		INSERT INTO industries (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, industry.Name).
		Scan(&industry.ID, &industry.CreatedAt, &industry.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrIndustryAlreadyExists
		}
		return fmt.Errorf("error creating industry: %w", err)
	}

	return nil
}

// GetByID retrieves an industry by ID
func (r *IndustryRepository) GetByID(ctx context.Context, id int64) (*models.Industry, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM industries
		WHERE id = $1
	`

	var industry models.Industry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&industry.ID,
		&industry.Name,
		&industry.CreatedAt,
		&industry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIndustryNotFound
		}
		return nil, fmt.Errorf("error retrieving industry: %w", err)
	}

	return &industry, nil
}

// GetAll retrieves all industries ordered by name
func (r *IndustryRepository) GetAll(ctx context.Context) ([]*models.Industry, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM industries
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var industries []*models.Industry
	for rows.Next() {
		var industry models.Industry
		if err := rows.Scan(
			&industry.ID,
			&industry.Name,
			&industry.CreatedAt,
			&industry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		industries = append(industries, &industry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return industries, nil
}

// Update replaces an industry's name
func (r *IndustryRepository) Update(ctx context.Context, industry *models.Industry) error {
	query := `
		UPDATE industries
		SET name = $1, updated_at = NOW()
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, industry.Name, industry.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrIndustryAlreadyExists
		}
		return fmt.Errorf("error updating industry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrIndustryNotFound
	}

	return nil
}

// Delete removes an industry. Deletion is restricted while companies
// still reference the industry.
func (r *IndustryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM industries WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrIndustryInUse
		}
		return fmt.Errorf("error deleting industry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrIndustryNotFound
	}

	return nil
}
