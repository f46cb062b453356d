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

// StudentRepository handles database operations for students.
// is_placed is deliberately absent from the INSERT and UPDATE column
// lists; only the placement write path touches it.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database.Pool,
	}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, phone, department_id, cgpa)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_placed, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.Email,
		student.Phone,
		student.DepartmentID,
		student.CGPA,
	).Scan(&student.ID, &student.IsPlaced, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, email, phone, department_id, cgpa, is_placed, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Phone,
		&student.DepartmentID,
		&student.CGPA,
		&student.IsPlaced,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students, optionally filtered by department
func (r *StudentRepository) GetAll(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	query := `
		SELECT id, name, email, phone, department_id, cgpa, is_placed, created_at, updated_at
		FROM students
		WHERE ($1 = 0 OR department_id = $1)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Phone,
			&student.DepartmentID,
			&student.CGPA,
			&student.IsPlaced,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update replaces every mutable column of a student. is_placed is not
// in the SET list.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, phone = $3, department_id = $4, cgpa = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.Email,
		student.Phone,
		student.DepartmentID,
		student.CGPA,
		student.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student. The schema cascades the delete to the
// student's placement rows, so no orphaned facts remain and no
// is_placed recomputation is needed.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
