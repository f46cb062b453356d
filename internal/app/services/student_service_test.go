package services

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

func newStudentFixture(t *testing.T) (StudentService, *fakeStudentStore, *fakeDepartmentStore) {
	t.Helper()

	students := newFakeStudentStore()
	departments := newFakeDepartmentStore()
	require.NoError(t, departments.Create(context.Background(), &models.Department{Name: "Computer Science"}))

	return NewStudentService(students, departments), students, departments
}

func TestCreateStudent_NormalizesEmail(t *testing.T) {
	service, students, _ := newStudentFixture(t)
	ctx := context.Background()

	student := &models.Student{
		Name:         "  Alice  ",
		Email:        "  Alice@Univ.EDU ",
		DepartmentID: 1,
		CGPA:         decimal.RequireFromString("9.10"),
	}
	require.NoError(t, service.CreateStudent(ctx, student))

	got, err := students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@univ.edu", got.Email)
}

func TestCreateStudent_IgnoresCallerPlacedFlag(t *testing.T) {
	service, students, _ := newStudentFixture(t)
	ctx := context.Background()

	student := &models.Student{
		Name:         "Alice",
		Email:        "alice@univ.edu",
		DepartmentID: 1,
		CGPA:         decimal.RequireFromString("9.10"),
		IsPlaced:     true, // must not stick
	}
	require.NoError(t, service.CreateStudent(ctx, student))

	got, err := students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPlaced)
}

func TestCreateStudent_UnknownDepartment(t *testing.T) {
	service, _, _ := newStudentFixture(t)

	student := &models.Student{
		Name:         "Alice",
		Email:        "alice@univ.edu",
		DepartmentID: 999,
		CGPA:         decimal.RequireFromString("9.10"),
	}
	err := service.CreateStudent(context.Background(), student)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestCreateStudent_DuplicateEmail(t *testing.T) {
	service, _, _ := newStudentFixture(t)
	ctx := context.Background()

	first := &models.Student{
		Name:         "Alice",
		Email:        "alice@univ.edu",
		DepartmentID: 1,
		CGPA:         decimal.RequireFromString("9.10"),
	}
	require.NoError(t, service.CreateStudent(ctx, first))

	second := &models.Student{
		Name:         "Other Alice",
		Email:        "ALICE@univ.edu", // normalizes to the same address
		DepartmentID: 1,
		CGPA:         decimal.RequireFromString("8.00"),
	}
	err := service.CreateStudent(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrUniqueViolation)
}

func TestCreateStudent_Validation(t *testing.T) {
	service, _, _ := newStudentFixture(t)
	ctx := context.Background()

	valid := func() *models.Student {
		return &models.Student{
			Name:         "Alice",
			Email:        "alice@univ.edu",
			DepartmentID: 1,
			CGPA:         decimal.RequireFromString("9.10"),
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.Student)
	}{
		{"empty name", func(s *models.Student) { s.Name = "   " }},
		{"empty email", func(s *models.Student) { s.Email = "" }},
		{"missing department", func(s *models.Student) { s.DepartmentID = 0 }},
		{"cgpa below scale", func(s *models.Student) { s.CGPA = decimal.RequireFromString("-0.01") }},
		{"cgpa above scale", func(s *models.Student) { s.CGPA = decimal.RequireFromString("10.01") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := valid()
			tt.mutate(student)
			err := service.CreateStudent(ctx, student)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestUpdateStudent_PreservesPlacedFlag(t *testing.T) {
	service, students, _ := newStudentFixture(t)
	ctx := context.Background()

	student := &models.Student{
		Name:         "Alice",
		Email:        "alice@univ.edu",
		DepartmentID: 1,
		CGPA:         decimal.RequireFromString("9.10"),
	}
	require.NoError(t, service.CreateStudent(ctx, student))

	// Simulate the placement path having set the flag.
	students.byID[student.ID].IsPlaced = true

	updated := &models.Student{
		ID:           student.ID,
		Name:         "Alice B",
		Email:        "alice.b@univ.edu",
		DepartmentID: 1,
		CGPA:         decimal.RequireFromString("9.30"),
		IsPlaced:     false, // caller cannot clear it
	}
	require.NoError(t, service.UpdateStudent(ctx, updated))

	got, err := students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.True(t, got.CGPA.Equal(decimal.RequireFromString("9.30")))
	assert.True(t, got.IsPlaced)
}

func TestGetStudentByID_AttachesDepartment(t *testing.T) {
	service, _, _ := newStudentFixture(t)
	ctx := context.Background()

	student := &models.Student{
		Name:         "Alice",
		Email:        "alice@univ.edu",
		DepartmentID: 1,
		CGPA:         decimal.RequireFromString("9.10"),
	}
	require.NoError(t, service.CreateStudent(ctx, student))

	got, err := service.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Department)
	assert.Equal(t, "Computer Science", got.Department.Name)
}

func TestGetStudentByID_NotFound(t *testing.T) {
	service, _, _ := newStudentFixture(t)

	_, err := service.GetStudentByID(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetAllStudents_FiltersByDepartment(t *testing.T) {
	service, _, departments := newStudentFixture(t)
	ctx := context.Background()

	require.NoError(t, departments.Create(ctx, &models.Department{Name: "Electronics"}))

	seed := []struct {
		name   string
		deptID int64
	}{
		{"Alice", 1},
		{"Bob", 1},
		{"Carol", 2},
	}
	for _, s := range seed {
		student := &models.Student{
			Name:         s.name,
			Email:        strings.ToLower(s.name) + "@univ.edu",
			DepartmentID: s.deptID,
			CGPA:         decimal.RequireFromString("8.00"),
		}
		require.NoError(t, service.CreateStudent(ctx, student))
	}

	all, err := service.GetAllStudents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := service.GetAllStudents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Carol", filtered[0].Name)
}
