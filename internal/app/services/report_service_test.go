package services

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// fakeReportStore computes the reports from the other fakes the way
// the SQL views do, so the service tests exercise real eligibility and
// aggregation semantics.
type fakeReportStore struct {
	departments *fakeDepartmentStore
	industries  *fakeIndustryStore
	students    *fakeStudentStore
	companies   *fakeCompanyStore
	placements  *fakePlacementStore
}

func (f *fakeReportStore) GetPlacementDetails(_ context.Context, departmentID, industryID int64) ([]*models.PlacementDetail, error) {
	var out []*models.PlacementDetail
	for _, p := range f.placements.byID {
		student := f.students.byID[p.StudentID]
		company := f.companies.byID[p.CompanyID]
		if student == nil || company == nil {
			continue
		}
		if departmentID != 0 && student.DepartmentID != departmentID {
			continue
		}
		if industryID != 0 && company.IndustryID != industryID {
			continue
		}
		out = append(out, &models.PlacementDetail{
			PlacementID:    p.ID,
			StudentName:    student.Name,
			DepartmentName: f.departments.byID[student.DepartmentID].Name,
			CompanyName:    company.Name,
			IndustryName:   f.industries.byID[company.IndustryID].Name,
			Salary:         p.Salary,
			PlacedOn:       p.PlacedOn,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlacementID < out[j].PlacementID })
	return out, nil
}

func (f *fakeReportStore) GetDepartmentPlacementCounts(_ context.Context) ([]*models.DepartmentPlacementCount, error) {
	var out []*models.DepartmentPlacementCount
	for _, d := range f.departments.byID {
		count := int64(0)
		for _, p := range f.placements.byID {
			if student, ok := f.students.byID[p.StudentID]; ok && student.DepartmentID == d.ID {
				count++
			}
		}
		out = append(out, &models.DepartmentPlacementCount{
			DepartmentID:   d.ID,
			DepartmentName: d.Name,
			PlacementCount: count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartmentID < out[j].DepartmentID })
	return out, nil
}

func (f *fakeReportStore) GetEligibilityMatrix(_ context.Context, studentID, companyID int64, eligible *bool) ([]*models.EligibilityRow, error) {
	var out []*models.EligibilityRow
	for _, s := range f.students.byID {
		if studentID != 0 && s.ID != studentID {
			continue
		}
		for _, c := range f.companies.byID {
			if companyID != 0 && c.ID != companyID {
				continue
			}
			isEligible := s.IsEligibleFor(c)
			if eligible != nil && isEligible != *eligible {
				continue
			}
			out = append(out, &models.EligibilityRow{
				StudentID:   s.ID,
				StudentName: s.Name,
				CGPA:        s.CGPA,
				CompanyID:   c.ID,
				CompanyName: c.Name,
				MinCGPA:     c.MinCGPA,
				IsEligible:  isEligible,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentID != out[j].StudentID {
			return out[i].StudentID < out[j].StudentID
		}
		return out[i].CompanyID < out[j].CompanyID
	})
	return out, nil
}

func (f *fakeReportStore) GetEligibleCompaniesForStudent(_ context.Context, studentID int64) ([]*models.EligibleCompany, error) {
	student, ok := f.students.byID[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	var out []*models.EligibleCompany
	for _, c := range f.companies.byID {
		if student.IsEligibleFor(c) {
			out = append(out, &models.EligibleCompany{
				CompanyID:   c.ID,
				CompanyName: c.Name,
				MinCGPA:     c.MinCGPA,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyID < out[j].CompanyID })
	return out, nil
}

type reportFixture struct {
	departments *fakeDepartmentStore
	industries  *fakeIndustryStore
	students    *fakeStudentStore
	companies   *fakeCompanyStore
	placements  *fakePlacementStore
	service     ReportService
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	f := &reportFixture{
		departments: newFakeDepartmentStore(),
		industries:  newFakeIndustryStore(),
		students:    newFakeStudentStore(),
		companies:   newFakeCompanyStore(),
	}
	f.placements = newFakePlacementStore(f.students, f.companies)
	f.service = NewReportService(&fakeReportStore{
		departments: f.departments,
		industries:  f.industries,
		students:    f.students,
		companies:   f.companies,
		placements:  f.placements,
	}, f.students)

	ctx := context.Background()
	require.NoError(t, f.departments.Create(ctx, &models.Department{Name: "Computer Science"}))
	require.NoError(t, f.departments.Create(ctx, &models.Department{Name: "Civil"}))
	require.NoError(t, f.industries.Create(ctx, &models.Industry{Name: "Information Technology"}))

	return f
}

func (f *reportFixture) addStudent(t *testing.T, name, email, cgpa string, deptID int64) *models.Student {
	t.Helper()
	student := &models.Student{Name: name, Email: email, DepartmentID: deptID, CGPA: decimal.RequireFromString(cgpa)}
	require.NoError(t, f.students.Create(context.Background(), student))
	return student
}

func (f *reportFixture) addCompany(t *testing.T, name, minCGPA string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, IndustryID: 1, MinCGPA: decimal.RequireFromString(minCGPA)}
	require.NoError(t, f.companies.Create(context.Background(), company))
	return company
}

func TestGetEligibilityMatrix_BoundaryAtCutoff(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	f.addStudent(t, "Alice", "alice@univ.edu", "9.10", 1)
	f.addStudent(t, "Bob", "bob@univ.edu", "8.00", 1)
	f.addStudent(t, "Carol", "carol@univ.edu", "7.80", 2)
	f.addCompany(t, "TechCorp", "8.00")

	rows, err := f.service.GetEligibilityMatrix(ctx, 0, 0, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := make(map[string]bool)
	for _, row := range rows {
		byName[row.StudentName] = row.IsEligible
	}
	assert.True(t, byName["Alice"])
	assert.True(t, byName["Bob"], "cgpa equal to the cutoff is eligible")
	assert.False(t, byName["Carol"])
}

func TestGetEligibilityMatrix_EligibleFilter(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	f.addStudent(t, "Alice", "alice@univ.edu", "9.10", 1)
	f.addStudent(t, "Carol", "carol@univ.edu", "7.80", 2)
	f.addCompany(t, "TechCorp", "8.00")

	eligible := true
	rows, err := f.service.GetEligibilityMatrix(ctx, 0, 0, &eligible)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].StudentName)

	eligible = false
	rows, err = f.service.GetEligibilityMatrix(ctx, 0, 0, &eligible)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Carol", rows[0].StudentName)
}

func TestGetEligibleCompaniesForStudent(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	alice := f.addStudent(t, "Alice", "alice@univ.edu", "8.50", 1)
	f.addCompany(t, "TechCorp", "8.00")
	f.addCompany(t, "EliteLabs", "9.00")

	companies, err := f.service.GetEligibleCompaniesForStudent(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "TechCorp", companies[0].CompanyName)
}

func TestGetEligibleCompaniesForStudent_UnknownStudent(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.GetEligibleCompaniesForStudent(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetDepartmentPlacementCounts_IncludesZeroCounts(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	alice := f.addStudent(t, "Alice", "alice@univ.edu", "9.10", 1)
	company := f.addCompany(t, "TechCorp", "8.00")
	require.NoError(t, f.placements.Create(ctx, &models.Placement{
		StudentID: alice.ID,
		CompanyID: company.ID,
		Salary:    decimal.RequireFromString("1200000"),
	}))

	counts, err := f.service.GetDepartmentPlacementCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byName := make(map[string]int64)
	for _, c := range counts {
		byName[c.DepartmentName] = c.PlacementCount
	}
	assert.Equal(t, int64(1), byName["Computer Science"])
	assert.Equal(t, int64(0), byName["Civil"], "departments without placements still appear")
}

func TestGetPlacementDetails_Filters(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	alice := f.addStudent(t, "Alice", "alice@univ.edu", "9.10", 1)
	carol := f.addStudent(t, "Carol", "carol@univ.edu", "8.20", 2)
	company := f.addCompany(t, "TechCorp", "8.00")

	for _, s := range []*models.Student{alice, carol} {
		require.NoError(t, f.placements.Create(ctx, &models.Placement{
			StudentID: s.ID,
			CompanyID: company.ID,
			Salary:    decimal.RequireFromString("1000000"),
		}))
	}

	all, err := f.service.GetPlacementDetails(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	csOnly, err := f.service.GetPlacementDetails(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, csOnly, 1)
	assert.Equal(t, "Alice", csOnly[0].StudentName)
	assert.Equal(t, "Computer Science", csOnly[0].DepartmentName)
	assert.Equal(t, "Information Technology", csOnly[0].IndustryName)

	_, err = f.service.GetPlacementDetails(ctx, -1, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
