package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/models"
	"placementhub/internal/db"
)

// ReportRepository runs the read-only reporting queries. Every report
// is recomputed per query; nothing is materialized or cached.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(database *db.PostgresDB) *ReportRepository {
	return &ReportRepository{
		db: database.Pool,
	}
}

// GetPlacementDetails returns one denormalized row per placement.
// Inner joins throughout: a placement whose student or company fails
// to resolve is excluded, though referential integrity makes that
// unreachable.
func (r *ReportRepository) GetPlacementDetails(ctx context.Context, departmentID, industryID int64) ([]*models.PlacementDetail, error) {
	query := `
		SELECT p.id, s.name, d.name, c.name, i.name, p.salary, p.placed_on
		FROM placements p
		JOIN students s ON s.id = p.student_id
		JOIN departments d ON d.id = s.department_id
		JOIN companies c ON c.id = p.company_id
		JOIN industries i ON i.id = c.industry_id
		WHERE ($1 = 0 OR d.id = $1)
		  AND ($2 = 0 OR i.id = $2)
		ORDER BY p.placed_on DESC, p.id DESC
	`

	rows, err := r.db.Query(ctx, query, departmentID, industryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*models.PlacementDetail
	for rows.Next() {
		var detail models.PlacementDetail
		if err := rows.Scan(
			&detail.PlacementID,
			&detail.StudentName,
			&detail.DepartmentName,
			&detail.CompanyName,
			&detail.IndustryName,
			&detail.Salary,
			&detail.PlacedOn,
		); err != nil {
			return nil, err
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// GetDepartmentPlacementCounts counts placements per department. The
// join chain is outer from departments so a department with no
// students or no placements reports zero instead of disappearing.
func (r *ReportRepository) GetDepartmentPlacementCounts(ctx context.Context) ([]*models.DepartmentPlacementCount, error) {
	query := `
		SELECT d.id, d.name, COUNT(p.id)
		FROM departments d
		LEFT JOIN students s ON s.department_id = d.id
		LEFT JOIN placements p ON p.student_id = s.id
		GROUP BY d.id, d.name
		ORDER BY COUNT(p.id) DESC, d.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*models.DepartmentPlacementCount
	for rows.Next() {
		var count models.DepartmentPlacementCount
		if err := rows.Scan(
			&count.DepartmentID,
			&count.DepartmentName,
			&count.PlacementCount,
		); err != nil {
			return nil, err
		}
		counts = append(counts, &count)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetEligibilityMatrix returns students x companies rows annotated
// with whether the student meets the company's cutoff. The cross
// product is O(students * companies), so the optional filters matter
// once either side grows; callers wanting a single student's view
// should prefer GetEligibleCompaniesForStudent.
func (r *ReportRepository) GetEligibilityMatrix(ctx context.Context, studentID, companyID int64, eligible *bool) ([]*models.EligibilityRow, error) {
	query := `
		SELECT s.id, s.name, s.cgpa, c.id, c.name, c.min_cgpa, (s.cgpa >= c.min_cgpa)
		FROM students s
		CROSS JOIN companies c
		WHERE ($1 = 0 OR s.id = $1)
		  AND ($2 = 0 OR c.id = $2)
		  AND ($3::BOOLEAN IS NULL OR (s.cgpa >= c.min_cgpa) = $3)
		ORDER BY s.name, c.name
	`

	rows, err := r.db.Query(ctx, query, studentID, companyID, eligible)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matrix []*models.EligibilityRow
	for rows.Next() {
		var row models.EligibilityRow
		if err := rows.Scan(
			&row.StudentID,
			&row.StudentName,
			&row.CGPA,
			&row.CompanyID,
			&row.CompanyName,
			&row.MinCGPA,
			&row.IsEligible,
		); err != nil {
			return nil, err
		}
		matrix = append(matrix, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matrix, nil
}

// GetEligibleCompaniesForStudent returns the companies whose cutoff
// the student meets. Indexed selection on min_cgpa, O(companies) per
// call.
func (r *ReportRepository) GetEligibleCompaniesForStudent(ctx context.Context, studentID int64) ([]*models.EligibleCompany, error) {
	query := `
		SELECT c.id, c.name, c.min_cgpa
		FROM companies c
		JOIN students s ON s.id = $1
		WHERE c.min_cgpa <= s.cgpa
		ORDER BY c.min_cgpa DESC, c.name
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.EligibleCompany
	for rows.Next() {
		var company models.EligibleCompany
		if err := rows.Scan(
			&company.CompanyID,
			&company.CompanyName,
			&company.MinCGPA,
		); err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}
