package repositories

import (
	"placementhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	IndustryRepository   *IndustryRepository
	CompanyRepository    *CompanyRepository
	StudentRepository    *StudentRepository
	PlacementRepository  *PlacementRepository
	ReportRepository     *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(database),
		IndustryRepository:   NewIndustryRepository(database),
		CompanyRepository:    NewCompanyRepository(database),
		StudentRepository:    NewStudentRepository(database),
		PlacementRepository:  NewPlacementRepository(database),
		ReportRepository:     NewReportRepository(database),
	}
}
