package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "placementhub/internal/app/models"
	appRepos "placementhub/internal/app/repositories"
	"placementhub/internal/db"
	"placementhub/internal/pkg/apperrors"
)

// CreateDefaultData creates default departments and industries if they don't exist.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(database)
	industryRepo := appRepos.NewIndustryRepository(database)

	lgr.Info().Msg("Checking/Creating default data (Departments/Industries)...")
	var finalErr error // To collect potential errors without stopping the process

	defaultDepartments := []string{
		"Computer Science",
		"Electronics",
		"Mechanical",
		"Civil",
	}
	for _, name := range defaultDepartments {
		department := &appModels.Department{Name: name}
		err := departmentRepo.Create(ctx, department)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	defaultIndustries := []string{
		"Information Technology",
		"Finance",
		"Manufacturing",
		"Consulting",
	}
	for _, name := range defaultIndustries {
		industry := &appModels.Industry{Name: name}
		err := industryRepo.Create(ctx, industry)
		if err != nil && !errors.Is(err, apperrors.ErrIndustryAlreadyExists) {
			lgr.Error().Err(err).Str("industry", name).Msg("Error creating default industry")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Default data creation finished with errors")
	} else {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}
