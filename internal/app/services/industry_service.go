package services

import (
	"context"
	"fmt"
	"strings"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// IndustryService defines the interface for industry operations
type IndustryService interface {
	CreateIndustry(ctx context.Context, industry *models.Industry) error
	GetIndustryByID(ctx context.Context, id int64) (*models.Industry, error)
	GetAllIndustries(ctx context.Context) ([]*models.Industry, error)
	UpdateIndustry(ctx context.Context, industry *models.Industry) error
	DeleteIndustry(ctx context.Context, id int64) error
}

// industryServiceImpl implements the IndustryService interface
type industryServiceImpl struct {
	industryRepo IndustryStore
}

// NewIndustryService creates a new industry service instance
func NewIndustryService(industryRepo IndustryStore) IndustryService {
	return &industryServiceImpl{
		industryRepo: industryRepo,
	}
}

func (s *industryServiceImpl) validateIndustry(industry *models.Industry) error {
	if industry == nil {
		return fmt.Errorf("%w: industry is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(industry.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(industry.Name) > 100 {
		return fmt.Errorf("%w: name cannot exceed 100 characters", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateIndustry creates a new industry
func (s *industryServiceImpl) CreateIndustry(ctx context.Context, industry *models.Industry) error {
	if err := s.validateIndustry(industry); err != nil {
		return err
	}

	industry.Name = strings.TrimSpace(industry.Name)

	return s.industryRepo.Create(ctx, industry)
}

// GetIndustryByID retrieves an industry by ID
func (s *industryServiceImpl) GetIndustryByID(ctx context.Context, id int64) (*models.Industry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid industry ID", apperrors.ErrValidationFailed)
	}

	return s.industryRepo.GetByID(ctx, id)
}

// GetAllIndustries retrieves all industries
func (s *industryServiceImpl) GetAllIndustries(ctx context.Context) ([]*models.Industry, error) {
	return s.industryRepo.GetAll(ctx)
}

// UpdateIndustry replaces an existing industry's data
func (s *industryServiceImpl) UpdateIndustry(ctx context.Context, industry *models.Industry) error {
	if err := s.validateIndustry(industry); err != nil {
		return err
	}

	if industry.ID <= 0 {
		return fmt.Errorf("%w: invalid industry ID", apperrors.ErrValidationFailed)
	}

	industry.Name = strings.TrimSpace(industry.Name)

	return s.industryRepo.Update(ctx, industry)
}

// DeleteIndustry deletes an industry by ID. The repository rejects
// the delete while companies still reference the industry.
func (s *industryServiceImpl) DeleteIndustry(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid industry ID", apperrors.ErrValidationFailed)
	}

	return s.industryRepo.Delete(ctx, id)
}
