package services

import (
	"context"

	"placementhub/internal/app/models"
)

// Store interfaces consumed by the services. The concrete
// implementations live in the repositories package; tests substitute
// in-memory fakes.

// DepartmentStore is the data access surface for departments
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// IndustryStore is the data access surface for industries
type IndustryStore interface {
	Create(ctx context.Context, industry *models.Industry) error
	GetByID(ctx context.Context, id int64) (*models.Industry, error)
	GetAll(ctx context.Context) ([]*models.Industry, error)
	Update(ctx context.Context, industry *models.Industry) error
	Delete(ctx context.Context, id int64) error
}

// CompanyStore is the data access surface for companies
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetAll(ctx context.Context, industryID int64) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id int64) error
}

// StudentStore is the data access surface for students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, departmentID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// PlacementStore is the data access surface for placements. Create
// and Delete are transactional with the student's is_placed flag.
type PlacementStore interface {
	Create(ctx context.Context, placement *models.Placement) error
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	GetAll(ctx context.Context, studentID, companyID int64) ([]*models.Placement, error)
	Update(ctx context.Context, placement *models.Placement) error
	Delete(ctx context.Context, id int64) error
}

// ReportStore is the read-only reporting surface
type ReportStore interface {
	GetPlacementDetails(ctx context.Context, departmentID, industryID int64) ([]*models.PlacementDetail, error)
	GetDepartmentPlacementCounts(ctx context.Context) ([]*models.DepartmentPlacementCount, error)
	GetEligibilityMatrix(ctx context.Context, studentID, companyID int64, eligible *bool) ([]*models.EligibilityRow, error)
	GetEligibleCompaniesForStudent(ctx context.Context, studentID int64) ([]*models.EligibleCompany, error)
}
