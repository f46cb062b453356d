package services

import (
	"context"
	"fmt"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// ReportService defines the interface for the read-only reports
type ReportService interface {
	GetPlacementDetails(ctx context.Context, departmentID, industryID int64) ([]*models.PlacementDetail, error)
	GetDepartmentPlacementCounts(ctx context.Context) ([]*models.DepartmentPlacementCount, error)
	GetEligibilityMatrix(ctx context.Context, studentID, companyID int64, eligible *bool) ([]*models.EligibilityRow, error)
	GetEligibleCompaniesForStudent(ctx context.Context, studentID int64) ([]*models.EligibleCompany, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reportRepo  ReportStore
	studentRepo StudentStore
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo ReportStore, studentRepo StudentStore) ReportService {
	return &reportServiceImpl{
		reportRepo:  reportRepo,
		studentRepo: studentRepo,
	}
}

// GetPlacementDetails returns the denormalized placement report
func (s *reportServiceImpl) GetPlacementDetails(ctx context.Context, departmentID, industryID int64) ([]*models.PlacementDetail, error) {
	if departmentID < 0 || industryID < 0 {
		return nil, fmt.Errorf("%w: invalid filter ID", apperrors.ErrValidationFailed)
	}

	return s.reportRepo.GetPlacementDetails(ctx, departmentID, industryID)
}

// GetDepartmentPlacementCounts returns placement counts for every
// department, zero-count departments included
func (s *reportServiceImpl) GetDepartmentPlacementCounts(ctx context.Context) ([]*models.DepartmentPlacementCount, error) {
	return s.reportRepo.GetDepartmentPlacementCounts(ctx)
}

// GetEligibilityMatrix returns the students x companies eligibility
// matrix, optionally filtered
func (s *reportServiceImpl) GetEligibilityMatrix(ctx context.Context, studentID, companyID int64, eligible *bool) ([]*models.EligibilityRow, error) {
	if studentID < 0 || companyID < 0 {
		return nil, fmt.Errorf("%w: invalid filter ID", apperrors.ErrValidationFailed)
	}

	return s.reportRepo.GetEligibilityMatrix(ctx, studentID, companyID, eligible)
}

// GetEligibleCompaniesForStudent returns the companies whose cutoff
// the student meets. Unknown students are an error rather than an
// empty list.
func (s *reportServiceImpl) GetEligibleCompaniesForStudent(ctx context.Context, studentID int64) ([]*models.EligibleCompany, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.reportRepo.GetEligibleCompaniesForStudent(ctx, studentID)
}
