package services

import (
	"context"
	"fmt"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// PlacementService defines the interface for placement operations
type PlacementService interface {
	CreatePlacement(ctx context.Context, placement *models.Placement) error
	GetPlacementByID(ctx context.Context, id int64) (*models.Placement, error)
	GetAllPlacements(ctx context.Context, studentID, companyID int64) ([]*models.Placement, error)
	UpdatePlacement(ctx context.Context, placement *models.Placement) error
	DeletePlacement(ctx context.Context, id int64) error
}

// placementServiceImpl implements the PlacementService interface
type placementServiceImpl struct {
	placementRepo PlacementStore
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(placementRepo PlacementStore) PlacementService {
	return &placementServiceImpl{
		placementRepo: placementRepo,
	}
}

// validatePlacement validates placement data before database
// operations
func (s *placementServiceImpl) validatePlacement(placement *models.Placement) error {
	if placement == nil {
		return fmt.Errorf("%w: placement is nil", apperrors.ErrValidationFailed)
	}

	if placement.StudentID <= 0 {
		return fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	if placement.CompanyID <= 0 {
		return fmt.Errorf("%w: company ID must be positive", apperrors.ErrValidationFailed)
	}

	if !placement.Salary.IsPositive() {
		return fmt.Errorf("%w: salary must be positive", apperrors.ErrValidationFailed)
	}

	if placement.PlacedOn.IsZero() {
		return fmt.Errorf("%w: placement date is required", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreatePlacement records a placement. The repository inserts the row
// and sets the student's is_placed flag in one transaction; missing
// student/company and duplicate (student, company) pairs surface as
// the matching sentinel errors.
func (s *placementServiceImpl) CreatePlacement(ctx context.Context, placement *models.Placement) error {
	if err := s.validatePlacement(placement); err != nil {
		return err
	}

	return s.placementRepo.Create(ctx, placement)
}

// GetPlacementByID retrieves a placement by ID
func (s *placementServiceImpl) GetPlacementByID(ctx context.Context, id int64) (*models.Placement, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid placement ID", apperrors.ErrValidationFailed)
	}

	return s.placementRepo.GetByID(ctx, id)
}

// GetAllPlacements retrieves placements with optional student/company
// filters
func (s *placementServiceImpl) GetAllPlacements(ctx context.Context, studentID, companyID int64) ([]*models.Placement, error) {
	if studentID < 0 || companyID < 0 {
		return nil, fmt.Errorf("%w: invalid filter ID", apperrors.ErrValidationFailed)
	}

	return s.placementRepo.GetAll(ctx, studentID, companyID)
}

// UpdatePlacement replaces a placement's salary and date. Which
// student and company are involved cannot change, so the student's
// flag needs no recomputation here.
func (s *placementServiceImpl) UpdatePlacement(ctx context.Context, placement *models.Placement) error {
	if placement == nil {
		return fmt.Errorf("%w: placement is nil", apperrors.ErrValidationFailed)
	}

	if placement.ID <= 0 {
		return fmt.Errorf("%w: invalid placement ID", apperrors.ErrValidationFailed)
	}

	if !placement.Salary.IsPositive() {
		return fmt.Errorf("%w: salary must be positive", apperrors.ErrValidationFailed)
	}

	if placement.PlacedOn.IsZero() {
		return fmt.Errorf("%w: placement date is required", apperrors.ErrValidationFailed)
	}

	return s.placementRepo.Update(ctx, placement)
}

// DeletePlacement removes a placement. The repository recomputes the
// student's is_placed flag from the remaining rows in the same
// transaction.
func (s *placementServiceImpl) DeletePlacement(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid placement ID", apperrors.ErrValidationFailed)
	}

	return s.placementRepo.Delete(ctx, id)
}
