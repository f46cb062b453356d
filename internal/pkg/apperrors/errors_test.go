package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapTaxonomyRoots(t *testing.T) {
	tests := []struct {
		name string
		err  error
		root error
	}{
		{"department not found", ErrDepartmentNotFound, ErrNotFound},
		{"industry not found", ErrIndustryNotFound, ErrNotFound},
		{"company not found", ErrCompanyNotFound, ErrNotFound},
		{"student not found", ErrStudentNotFound, ErrNotFound},
		{"placement not found", ErrPlacementNotFound, ErrNotFound},
		{"department exists", ErrDepartmentAlreadyExists, ErrUniqueViolation},
		{"industry exists", ErrIndustryAlreadyExists, ErrUniqueViolation},
		{"company exists", ErrCompanyAlreadyExists, ErrUniqueViolation},
		{"email exists", ErrEmailAlreadyExists, ErrUniqueViolation},
		{"placement exists", ErrPlacementAlreadyExists, ErrUniqueViolation},
		{"placement student missing", ErrPlacementStudentMissing, ErrForeignKeyViolation},
		{"placement company missing", ErrPlacementCompanyMissing, ErrForeignKeyViolation},
		{"department in use", ErrDepartmentInUse, ErrForeignKeyViolation},
		{"industry in use", ErrIndustryInUse, ErrForeignKeyViolation},
		{"company in use", ErrCompanyInUse, ErrForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.root)
		})
	}
}

func TestWrappedEntityErrorKeepsRoot(t *testing.T) {
	err := fmt.Errorf("creating placement: %w", ErrPlacementAlreadyExists)

	assert.ErrorIs(t, err, ErrPlacementAlreadyExists)
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCustomErrorUnwrap(t *testing.T) {
	custom := NewCustomError(ErrStudentNotFound, "student 42 does not exist")

	assert.Equal(t, "student 42 does not exist", custom.Error())
	assert.ErrorIs(t, custom, ErrStudentNotFound)
	assert.ErrorIs(t, custom, ErrNotFound)
}

func TestCustomErrorWithDetails(t *testing.T) {
	custom := NewCustomError(ErrValidationFailed, "bad payload").
		WithDetails(map[string]interface{}{"field": "cgpa"})

	assert.Equal(t, "cgpa", custom.Details["field"])
	assert.ErrorIs(t, custom, ErrValidationFailed)
}

func TestCustomErrorFallbackMessage(t *testing.T) {
	custom := &CustomError{Err: ErrNotFound}
	assert.Equal(t, ErrNotFound.Error(), custom.Error())
}

func TestIsHelper(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrCompanyNotFound)

	assert.True(t, Is(err, ErrCompanyNotFound))
	assert.True(t, Is(err, ErrStudentNotFound, ErrCompanyNotFound))
	assert.False(t, Is(err, ErrStudentNotFound, ErrPlacementNotFound))
	assert.False(t, Is(errors.New("unrelated"), ErrNotFound))
}
