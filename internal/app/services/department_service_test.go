package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
	"placementhub/internal/pkg/apperrors"
)

func TestCreateDepartment_TrimsName(t *testing.T) {
	store := newFakeDepartmentStore()
	service := NewDepartmentService(store)
	ctx := context.Background()

	department := &models.Department{Name: "  Computer Science  "}
	require.NoError(t, service.CreateDepartment(ctx, department))

	got, err := store.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", got.Name)
}

func TestCreateDepartment_Validation(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	err := service.CreateDepartment(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = service.CreateDepartment(ctx, &models.Department{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = service.CreateDepartment(ctx, &models.Department{Name: strings.Repeat("x", 101)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentStore())
	ctx := context.Background()

	require.NoError(t, service.CreateDepartment(ctx, &models.Department{Name: "Civil"}))

	err := service.CreateDepartment(ctx, &models.Department{Name: "Civil"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrUniqueViolation)
}

func TestUpdateDepartment_NotFound(t *testing.T) {
	service := NewDepartmentService(newFakeDepartmentStore())

	err := service.UpdateDepartment(context.Background(), &models.Department{ID: 42, Name: "Civil"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestDeleteDepartment_StillReferenced(t *testing.T) {
	store := newFakeDepartmentStore()
	service := NewDepartmentService(store)
	ctx := context.Background()

	department := &models.Department{Name: "Civil"}
	require.NoError(t, service.CreateDepartment(ctx, department))
	store.inUse[department.ID] = true

	err := service.DeleteDepartment(ctx, department.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentInUse)
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)
}

func TestDeleteDepartment_Unreferenced(t *testing.T) {
	store := newFakeDepartmentStore()
	service := NewDepartmentService(store)
	ctx := context.Background()

	department := &models.Department{Name: "Civil"}
	require.NoError(t, service.CreateDepartment(ctx, department))

	require.NoError(t, service.DeleteDepartment(ctx, department.ID))

	_, err := service.GetDepartmentByID(ctx, department.ID)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}
