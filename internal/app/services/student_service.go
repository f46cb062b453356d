package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, departmentID int64) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo    StudentStore
	departmentRepo DepartmentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, departmentRepo DepartmentStore) StudentService {
	return &studentServiceImpl{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
	}
}

// validateStudent validates student data before database operations.
// IsPlaced is not validated here because it is not caller-supplied
// state; the struct field is ignored on create and update.
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if student.DepartmentID <= 0 {
		return fmt.Errorf("%w: department ID must be positive", apperrors.ErrValidationFailed)
	}

	if !models.ValidCGPA(student.CGPA) {
		return fmt.Errorf("%w: CGPA must be between 0 and 10", apperrors.ErrValidationFailed)
	}

	return nil
}

// checkDepartment verifies the referenced department exists
func (s *studentServiceImpl) checkDepartment(ctx context.Context, departmentID int64) error {
	_, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}
	return nil
}

// CreateStudent registers a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if err := s.checkDepartment(ctx, student.DepartmentID); err != nil {
		return err
	}

	student.Name = strings.TrimSpace(student.Name)
	student.Email = strings.ToLower(strings.TrimSpace(student.Email))

	return s.studentRepo.Create(ctx, student)
}

// GetStudentByID retrieves a student by ID, with the department
// attached
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetByID(ctx, student.DepartmentID)
	if err == nil && department != nil {
		student.Department = department
	}

	return student, nil
}

// GetAllStudents retrieves all students, optionally filtered by
// department
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	if departmentID < 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.GetAll(ctx, departmentID)
}

// UpdateStudent replaces an existing student's data. The placement
// flag is untouched regardless of what the caller put in the struct.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if student.ID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if err := s.checkDepartment(ctx, student.DepartmentID); err != nil {
		return err
	}

	student.Name = strings.TrimSpace(student.Name)
	student.Email = strings.ToLower(strings.TrimSpace(student.Email))

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent deletes a student by ID, cascading to the student's
// placement rows.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.Delete(ctx, id)
}
