package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompanyByID(ctx context.Context, id int64) (*models.Company, error)
	GetAllCompanies(ctx context.Context, industryID int64) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, company *models.Company) error
	DeleteCompany(ctx context.Context, id int64) error
}

// companyServiceImpl implements the CompanyService interface
type companyServiceImpl struct {
	companyRepo  CompanyStore
	industryRepo IndustryStore
}

// NewCompanyService creates a new company service instance
func NewCompanyService(companyRepo CompanyStore, industryRepo IndustryStore) CompanyService {
	return &companyServiceImpl{
		companyRepo:  companyRepo,
		industryRepo: industryRepo,
	}
}

// validateCompany validates company data before database operations
func (s *companyServiceImpl) validateCompany(company *models.Company) error {
	if company == nil {
		return fmt.Errorf("%w: company is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(company.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if company.IndustryID <= 0 {
		return fmt.Errorf("%w: industry ID must be positive", apperrors.ErrValidationFailed)
	}

	if !models.ValidCGPA(company.MinCGPA) {
		return fmt.Errorf("%w: minimum CGPA must be between 0 and 10", apperrors.ErrValidationFailed)
	}

	return nil
}

// checkIndustry verifies the referenced industry exists
func (s *companyServiceImpl) checkIndustry(ctx context.Context, industryID int64) error {
	_, err := s.industryRepo.GetByID(ctx, industryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrIndustryNotFound) {
			return apperrors.ErrIndustryNotFound
		}
		return fmt.Errorf("error checking industry: %w", err)
	}
	return nil
}

// CreateCompany creates a new company
func (s *companyServiceImpl) CreateCompany(ctx context.Context, company *models.Company) error {
	if err := s.validateCompany(company); err != nil {
		return err
	}

	if err := s.checkIndustry(ctx, company.IndustryID); err != nil {
		return err
	}

	company.Name = strings.TrimSpace(company.Name)

	return s.companyRepo.Create(ctx, company)
}

// GetCompanyByID retrieves a company by ID, with its industry attached
func (s *companyServiceImpl) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid company ID", apperrors.ErrValidationFailed)
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	industry, err := s.industryRepo.GetByID(ctx, company.IndustryID)
	if err == nil && industry != nil {
		company.Industry = industry
	}

	return company, nil
}

// GetAllCompanies retrieves all companies, optionally filtered by
// industry
func (s *companyServiceImpl) GetAllCompanies(ctx context.Context, industryID int64) ([]*models.Company, error) {
	if industryID < 0 {
		return nil, fmt.Errorf("%w: invalid industry ID", apperrors.ErrValidationFailed)
	}

	return s.companyRepo.GetAll(ctx, industryID)
}

// UpdateCompany replaces an existing company's data (full replace,
// contact fields included)
func (s *companyServiceImpl) UpdateCompany(ctx context.Context, company *models.Company) error {
	if err := s.validateCompany(company); err != nil {
		return err
	}

	if company.ID <= 0 {
		return fmt.Errorf("%w: invalid company ID", apperrors.ErrValidationFailed)
	}

	if err := s.checkIndustry(ctx, company.IndustryID); err != nil {
		return err
	}

	company.Name = strings.TrimSpace(company.Name)

	return s.companyRepo.Update(ctx, company)
}

// DeleteCompany deletes a company by ID. The repository rejects the
// delete while placements still reference the company.
func (s *companyServiceImpl) DeleteCompany(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid company ID", apperrors.ErrValidationFailed)
	}

	return s.companyRepo.Delete(ctx, id)
}
