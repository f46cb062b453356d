package services

import (
	"context"
	"sort"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

// In-memory store fakes. They honor the same error contract as the
// repositories package so service behavior can be exercised without a
// database.

type fakeDepartmentStore struct {
	nextID int64
	byID   map[int64]*models.Department
	inUse  map[int64]bool
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{
		byID:  make(map[int64]*models.Department),
		inUse: make(map[int64]bool),
	}
}

func (f *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	for _, d := range f.byID {
		if d.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	f.nextID++
	department.ID = f.nextID
	copied := *department
	f.byID[department.ID] = &copied
	return nil
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(f.byID))
	for _, d := range f.byID {
		copied := *d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeDepartmentStore) Update(_ context.Context, department *models.Department) error {
	existing, ok := f.byID[department.ID]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}
	for _, d := range f.byID {
		if d.ID != department.ID && d.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	existing.Name = department.Name
	return nil
}

func (f *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	if f.inUse[id] {
		return apperrors.ErrDepartmentInUse
	}
	delete(f.byID, id)
	return nil
}

type fakeIndustryStore struct {
	nextID int64
	byID   map[int64]*models.Industry
	inUse  map[int64]bool
}

func newFakeIndustryStore() *fakeIndustryStore {
	return &fakeIndustryStore{
		byID:  make(map[int64]*models.Industry),
		inUse: make(map[int64]bool),
	}
}

func (f *fakeIndustryStore) Create(_ context.Context, industry *models.Industry) error {
	for _, in := range f.byID {
		if in.Name == industry.Name {
			return apperrors.ErrIndustryAlreadyExists
		}
	}
	f.nextID++
	industry.ID = f.nextID
	copied := *industry
	f.byID[industry.ID] = &copied
	return nil
}

func (f *fakeIndustryStore) GetByID(_ context.Context, id int64) (*models.Industry, error) {
	in, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrIndustryNotFound
	}
	copied := *in
	return &copied, nil
}

func (f *fakeIndustryStore) GetAll(_ context.Context) ([]*models.Industry, error) {
	out := make([]*models.Industry, 0, len(f.byID))
	for _, in := range f.byID {
		copied := *in
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeIndustryStore) Update(_ context.Context, industry *models.Industry) error {
	existing, ok := f.byID[industry.ID]
	if !ok {
		return apperrors.ErrIndustryNotFound
	}
	existing.Name = industry.Name
	return nil
}

func (f *fakeIndustryStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrIndustryNotFound
	}
	if f.inUse[id] {
		return apperrors.ErrIndustryInUse
	}
	delete(f.byID, id)
	return nil
}

type fakeCompanyStore struct {
	nextID int64
	byID   map[int64]*models.Company

	// set by newFakePlacementStore; models ON DELETE RESTRICT
	placements *fakePlacementStore
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{byID: make(map[int64]*models.Company)}
}

func (f *fakeCompanyStore) Create(_ context.Context, company *models.Company) error {
	for _, c := range f.byID {
		if c.Name == company.Name {
			return apperrors.ErrCompanyAlreadyExists
		}
	}
	f.nextID++
	company.ID = f.nextID
	copied := *company
	f.byID[company.ID] = &copied
	return nil
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id int64) (*models.Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCompanyStore) GetAll(_ context.Context, industryID int64) ([]*models.Company, error) {
	out := make([]*models.Company, 0, len(f.byID))
	for _, c := range f.byID {
		if industryID != 0 && c.IndustryID != industryID {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCompanyStore) Update(_ context.Context, company *models.Company) error {
	if _, ok := f.byID[company.ID]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	copied := *company
	f.byID[company.ID] = &copied
	return nil
}

func (f *fakeCompanyStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	if f.placements != nil {
		for _, p := range f.placements.byID {
			if p.CompanyID == id {
				return apperrors.ErrCompanyInUse
			}
		}
	}
	delete(f.byID, id)
	return nil
}

type fakeStudentStore struct {
	nextID int64
	byID   map[int64]*models.Student

	// set by newFakePlacementStore; models ON DELETE CASCADE
	placements *fakePlacementStore
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{byID: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.byID {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	student.ID = f.nextID
	copied := *student
	copied.IsPlaced = false // derived state, never caller-supplied
	f.byID[student.ID] = &copied
	student.IsPlaced = copied.IsPlaced
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context, departmentID int64) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.byID))
	for _, s := range f.byID {
		if departmentID != 0 && s.DepartmentID != departmentID {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	existing, ok := f.byID[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for _, s := range f.byID {
		if s.ID != student.ID && s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	placed := existing.IsPlaced // flag survives full-record replacement
	copied := *student
	copied.IsPlaced = placed
	f.byID[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.byID, id)
	if f.placements != nil {
		for pid, p := range f.placements.byID {
			if p.StudentID == id {
				delete(f.placements.byID, pid)
			}
		}
	}
	return nil
}

// fakePlacementStore mirrors the transactional contract of the real
// repository: Create sets the student's placed flag, Delete recomputes
// it from the remaining rows.
type fakePlacementStore struct {
	nextID    int64
	byID      map[int64]*models.Placement
	students  *fakeStudentStore
	companies *fakeCompanyStore
}

func newFakePlacementStore(students *fakeStudentStore, companies *fakeCompanyStore) *fakePlacementStore {
	f := &fakePlacementStore{
		byID:      make(map[int64]*models.Placement),
		students:  students,
		companies: companies,
	}
	students.placements = f
	companies.placements = f
	return f
}

func (f *fakePlacementStore) Create(_ context.Context, placement *models.Placement) error {
	student, ok := f.students.byID[placement.StudentID]
	if !ok {
		return apperrors.ErrPlacementStudentMissing
	}
	if _, ok := f.companies.byID[placement.CompanyID]; !ok {
		return apperrors.ErrPlacementCompanyMissing
	}
	for _, p := range f.byID {
		if p.StudentID == placement.StudentID && p.CompanyID == placement.CompanyID {
			return apperrors.ErrPlacementAlreadyExists
		}
	}
	f.nextID++
	placement.ID = f.nextID
	copied := *placement
	f.byID[placement.ID] = &copied
	student.IsPlaced = true
	return nil
}

func (f *fakePlacementStore) GetByID(_ context.Context, id int64) (*models.Placement, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePlacementStore) GetAll(_ context.Context, studentID, companyID int64) ([]*models.Placement, error) {
	out := make([]*models.Placement, 0, len(f.byID))
	for _, p := range f.byID {
		if studentID != 0 && p.StudentID != studentID {
			continue
		}
		if companyID != 0 && p.CompanyID != companyID {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlacementStore) Update(_ context.Context, placement *models.Placement) error {
	existing, ok := f.byID[placement.ID]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}
	// student/company pair is immutable; only salary and date change
	existing.Salary = placement.Salary
	existing.PlacedOn = placement.PlacedOn
	return nil
}

func (f *fakePlacementStore) Delete(_ context.Context, id int64) error {
	p, ok := f.byID[id]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}
	delete(f.byID, id)

	if student, ok := f.students.byID[p.StudentID]; ok {
		remaining := false
		for _, other := range f.byID {
			if other.StudentID == p.StudentID {
				remaining = true
				break
			}
		}
		student.IsPlaced = remaining
	}
	return nil
}
