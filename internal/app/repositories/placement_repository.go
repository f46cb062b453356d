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

// Constraint names from migrations/001_init.sql, used to tell the
// placement table's two foreign keys apart.
const (
	placementStudentFK = "placements_student_id_fkey"
	placementCompanyFK = "placements_company_id_fkey"
)

// PlacementRepository handles database operations for placements.
//
// Unlike the other repositories it holds the full PostgresDB handle,
// because insert and delete must run together with the is_placed
// recomputation in one transaction: a committed placement row with a
// stale student flag must never be observable.
type PlacementRepository struct {
	database *db.PostgresDB
	db       *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(database *db.PostgresDB) *PlacementRepository {
	return &PlacementRepository{
		database: database,
		db:       database.Pool,
	}
}

// Create inserts a placement and marks the student placed, atomically.
// A new placement always implies placed, so the flag is set
// unconditionally rather than recounted.
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insertQuery := `
			INSERT INTO placements (student_id, company_id, salary, placed_on)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, insertQuery,
			placement.StudentID,
			placement.CompanyID,
			placement.Salary,
			placement.PlacedOn,
		).Scan(&placement.ID, &placement.CreatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrPlacementAlreadyExists
			}
			if dberrors.IsConstraint(err, placementStudentFK) {
				return apperrors.ErrPlacementStudentMissing
			}
			if dberrors.IsConstraint(err, placementCompanyFK) {
				return apperrors.ErrPlacementCompanyMissing
			}
			return fmt.Errorf("error creating placement: %w", err)
		}

		flagQuery := `
			UPDATE students
			SET is_placed = TRUE, updated_at = NOW()
			WHERE id = $1
		`

		if _, err := tx.Exec(ctx, flagQuery, placement.StudentID); err != nil {
			return fmt.Errorf("error marking student placed: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a placement by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	query := `
		SELECT id, student_id, company_id, salary, placed_on, created_at
		FROM placements
		WHERE id = $1
	`

	var placement models.Placement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&placement.ID,
		&placement.StudentID,
		&placement.CompanyID,
		&placement.Salary,
		&placement.PlacedOn,
		&placement.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}

	return &placement, nil
}

// GetAll retrieves placements, optionally filtered by student and/or
// company
func (r *PlacementRepository) GetAll(ctx context.Context, studentID, companyID int64) ([]*models.Placement, error) {
	query := `
		SELECT id, student_id, company_id, salary, placed_on, created_at
		FROM placements
		WHERE ($1 = 0 OR student_id = $1)
		  AND ($2 = 0 OR company_id = $2)
		ORDER BY placed_on DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var placements []*models.Placement
	for rows.Next() {
		var placement models.Placement
		if err := rows.Scan(
			&placement.ID,
			&placement.StudentID,
			&placement.CompanyID,
			&placement.Salary,
			&placement.PlacedOn,
			&placement.CreatedAt,
		); err != nil {
			return nil, err
		}
		placements = append(placements, &placement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return placements, nil
}

// Update replaces a placement's salary and date. student_id and
// company_id are immutable after insert, which is why no is_placed
// work happens here.
func (r *PlacementRepository) Update(ctx context.Context, placement *models.Placement) error {
	query := `
		UPDATE placements
		SET salary = $1, placed_on = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, placement.Salary, placement.PlacedOn, placement.ID)
	if err != nil {
		return fmt.Errorf("error updating placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// Delete removes a placement and recomputes the student's is_placed
// flag from the remaining rows, atomically. The recount (rather than
// an unconditional reset) keeps the flag true for students who still
// hold other placements.
func (r *PlacementRepository) Delete(ctx context.Context, id int64) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var studentID int64
		err := tx.QueryRow(ctx, `DELETE FROM placements WHERE id = $1 RETURNING student_id`, id).
			Scan(&studentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrPlacementNotFound
			}
			return fmt.Errorf("error deleting placement: %w", err)
		}

		recomputeQuery := `
			UPDATE students
			SET is_placed = EXISTS(SELECT 1 FROM placements WHERE student_id = $1),
			    updated_at = NOW()
			WHERE id = $1
		`

		if _, err := tx.Exec(ctx, recomputeQuery, studentID); err != nil {
			return fmt.Errorf("error recomputing placement status: %w", err)
		}

		return nil
	})
}
