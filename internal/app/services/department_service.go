package services

import (
	"context"
	"fmt"
	"strings"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// DepartmentService defines the interface for department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

// validateDepartment validates department data before database operations
func (s *departmentServiceImpl) validateDepartment(department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(department.Name) > 100 {
		return fmt.Errorf("%w: name cannot exceed 100 characters", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	department.Name = strings.TrimSpace(department.Name)

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return err
	}
	return nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	return s.departmentRepo.GetByID(ctx, id)
}

// GetAllDepartments retrieves all departments
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// UpdateDepartment replaces an existing department's data
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	if department.ID <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	department.Name = strings.TrimSpace(department.Name)

	return s.departmentRepo.Update(ctx, department)
}

// DeleteDepartment deletes a department by ID. The repository rejects
// the delete while students still reference the department.
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	return s.departmentRepo.Delete(ctx, id)
}
